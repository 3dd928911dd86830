package state

import (
	"slices"
	"strings"
)

// DefaultLocation is the fallback target when none is configured.
const DefaultLocation = "Seoul"

// DefaultFavorites seeds a session when configuration provides none.
var DefaultFavorites = []string{"Seoul", "New York", "London"}

// Snapshot is a copy of the session state at a point in time.
type Snapshot struct {
	Favorites []string
	Target    string
	Fallback  string
}

// Session holds the favorites list and the current target location for one
// interactive session. Add, Select and Remove are its only write paths.
type Session struct {
	favorites []string
	target    string
	fallback  string
}

// NewSession builds a session targeting fallback, seeded with favorites in
// order. Blank and duplicate seed entries are dropped.
func NewSession(fallback string, favorites []string) *Session {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		fallback = DefaultLocation
	}
	s := &Session{target: fallback, fallback: fallback}
	for _, name := range favorites {
		s.Add(name)
	}
	return s
}

// Add appends name unless it is blank or already a favorite. It reports
// whether the list changed.
func (s *Session) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.Contains(name) {
		return false
	}
	s.favorites = append(s.favorites, name)
	return true
}

// Select makes name the target. Non-members are allowed; blank names are ignored.
func (s *Session) Select(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.target = name
}

// Remove deletes name from the favorites. Removing the current target resets
// it to the fallback, even if the fallback is no longer a favorite. It reports
// whether the list changed.
func (s *Session) Remove(name string) bool {
	name = strings.TrimSpace(name)
	idx := slices.Index(s.favorites, name)
	if idx < 0 {
		return false
	}
	s.favorites = slices.Delete(s.favorites, idx, idx+1)
	if s.target == name {
		s.target = s.fallback
	}
	return true
}

// Contains reports whether name is a favorite.
func (s *Session) Contains(name string) bool {
	return slices.Contains(s.favorites, strings.TrimSpace(name))
}

// Favorites returns a copy of the favorites in display order.
func (s *Session) Favorites() []string {
	return slices.Clone(s.favorites)
}

// Target returns the location shown on the dashboard.
func (s *Session) Target() string {
	return s.target
}

// Fallback returns the target used after the current one is removed.
func (s *Session) Fallback() string {
	return s.fallback
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Favorites: s.Favorites(),
		Target:    s.target,
		Fallback:  s.fallback,
	}
}
