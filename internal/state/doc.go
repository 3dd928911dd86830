// Package state holds the per-session favorites list and target location.
//
// # Overview
//
// A Session is created once at startup from configuration and lives for the
// lifetime of the interactive program. Nothing is written to disk.
//
//	session := state.NewSession("Seoul", []string{"Seoul", "New York", "London"})
//	session.Add("Paris")      // appended
//	session.Add("Paris")      // no-op, already present
//	session.Select("London")  // target = London
//	session.Remove("London")  // target falls back to Seoul
//
// # Invariants
//
//   - Favorites never contain duplicates or blank names
//   - Insertion order is display order
//   - Target is never empty; removing the target resets it to the fallback
//
// The fallback may reference a location that is no longer a favorite. This
// keeps the dashboard pointed at a known location rather than the next list
// entry or nothing at all.
//
// # Concurrency Model
//
// Session has no lock. The UI mutates it only from its update loop, one user
// action at a time, and network results arrive as messages on that same loop.
//
// # Copies
//
// Favorites and Snapshot return copies so the view can never mutate session
// state behind the write paths.
package state
