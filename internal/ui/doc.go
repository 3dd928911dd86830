// Package ui provides the nimbus terminal dashboard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds the favorites cursor, the two
// text inputs and the last rendered dashboard.ViewModel. All weather logic
// lives in the dashboard package; the UI only decides which query to load and
// when.
//
// # Package Structure
//
//   - app.go: Model, Update loop, commands and the Run entry point
//   - view.go: header, favorites sidebar, weather card and footer rendering
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings (bubbles/key)
//   - theme.go: color themes and lipgloss styles
//   - style_helpers.go, strings.go, layout.go: rendering helpers
//
// # Event Flow
//
//  1. Init requests the initial query: the --location text, or the session target
//  2. startLoad cancels any in-flight fetch, bumps the sequence number and
//     runs dashboard.Load in a command
//  3. reportMsg results with an old sequence number are dropped
//  4. Favorite mutations go straight to state.Session; selecting a favorite, or
//     removing the current target, loads the new target
//  5. A GPS lookup that succeeds loads the coordinates once; the next load
//     goes back to the text query
//
// # Key Bindings
//
//   - /: Search a city (enter submits, esc cancels)
//   - g: Use the current position
//   - r: Refresh the current query
//   - a: Add a favorite
//   - j/k or arrows: Move through favorites
//   - enter: Show the highlighted favorite
//   - d or x: Remove the highlighted favorite
//   - T: Cycle theme (saved to prefs)
//   - ?: Toggle help
//   - q or Ctrl+C: Quit
package ui
