package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"

	"github.com/five82/nimbus/internal/config"
	"github.com/five82/nimbus/internal/dashboard"
	"github.com/five82/nimbus/internal/geo"
	"github.com/five82/nimbus/internal/prefs"
	"github.com/five82/nimbus/internal/state"
	"github.com/five82/nimbus/internal/ui"
	"github.com/five82/nimbus/internal/weatherapi"
)

// Options configure the nimbus application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/nimbus/prefs.toml
	EnvFile    string // empty skips .env loading
	Location   string // initial query; empty uses the default location
}

// Run boots the nimbus TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := cfg.NewLogger(logOut)

	dash, err := newDashboard(cfg, logger)
	if err != nil {
		return err
	}
	session := state.NewSession(cfg.DefaultLocation, cfg.Favorites)
	userPrefs := prefs.Load(opts.PrefsPath)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger.Info("nimbus starting",
		slog.String("default_location", session.Fallback()),
		slog.Int("favorites", len(session.Favorites())),
		slog.Bool("fixed_gps", cfg.GPS != nil),
	)

	err = ui.Run(ui.Options{
		Context:      ctx,
		Dashboard:    dash,
		Session:      session,
		Logger:       logger,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    prefsPath,
		Location:     opts.Location,
		RefreshEvery: cfg.RefreshInterval,
	})
	if err != nil {
		logger.Error("ui exited with error", slog.Any("error", err))
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("nimbus stopped")
	return nil
}

// loadEnvFile exports variables from path without overriding ones already
// set. A missing file is not an error.
func loadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// newDashboard wires the weather client and locator from configuration.
func newDashboard(cfg config.Config, logger *slog.Logger) (*dashboard.Dashboard, error) {
	client, err := weatherapi.NewClient(cfg.APIKey, weatherapi.WithBaseURL(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("init weather client: %w", err)
	}
	return dashboard.New(client, newLocator(cfg), logger), nil
}

// newLocator prefers a fixed position from config over the IP lookup.
func newLocator(cfg config.Config) geo.Locator {
	if cfg.GPS != nil {
		return geo.StaticLocator{Coords: *cfg.GPS}
	}
	return geo.NewIPLocator(cfg.GeoURL)
}
