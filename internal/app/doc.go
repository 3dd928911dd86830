// Package app provides the orchestration layer for nimbus.
//
// # Overview
//
// This package wires together configuration, logging, the weather client,
// the locator, the favorites session and the UI. It is the composition root:
// every dependency is built here and passed down.
//
// # Startup
//
//  1. Export variables from the .env file, if present (never overriding the shell)
//  2. Load config.toml and NIMBUS_* overrides, then require an API key
//  3. Open the log file and build the slog logger; the TUI owns the terminal
//  4. Build the weatherapi client and the locator (fixed gps from config,
//     otherwise an IP lookup)
//  5. Seed a state.Session with the default location and favorites
//  6. Run the UI until the user quits or the context is cancelled
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Unreadable .env, config file or invalid gps value
//   - Missing API key
//   - Log file that cannot be opened
//
// Everything after startup is recoverable. A failed fetch becomes the
// "location not found" view and a failed GPS lookup falls back to the text
// query; both are logged, neither stops the program.
//
// # Usage Example
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := app.Run(ctx, app.Options{Location: "Busan"}); err != nil {
//		log.Fatalf("nimbus failed: %v", err)
//	}
package app
