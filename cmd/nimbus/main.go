package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/five82/nimbus/internal/app"
)

// runFunc starts the application; tests swap it for a recorder.
type runFunc func(ctx context.Context, opts app.Options) error

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newCommand(app.Run).Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "nimbus: %v\n", err)
		return 1
	}
	return 0
}

func newCommand(start runFunc) *cli.Command {
	return &cli.Command{
		Name:  "nimbus",
		Usage: "weather dashboard for the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file path (default ~/.config/nimbus/config.toml)",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "preferences file path (default ~/.config/nimbus/prefs.toml)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file to load before reading config; missing files are ignored",
			},
			&cli.StringFlag{
				Name:    "location",
				Aliases: []string{"l"},
				Usage:   "initial city or lat,lon query",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return start(ctx, app.Options{
				ConfigPath: cmd.String("config"),
				PrefsPath:  cmd.String("prefs"),
				EnvFile:    cmd.String("env-file"),
				Location:   cmd.String("location"),
			})
		},
	}
}
