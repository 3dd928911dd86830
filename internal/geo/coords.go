// Package geo resolves the host's approximate position for GPS lookups.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnavailable means the host position could not be determined.
var ErrUnavailable = errors.New("location unavailable")

// Locator reports the current position of the host.
type Locator interface {
	Locate(ctx context.Context) (Coords, error)
}

// Coords is a latitude/longitude pair in decimal degrees.
type Coords struct {
	Latitude  float64
	Longitude float64
}

// Query formats the coordinates as a "lat,lon" weather query.
func (c Coords) Query() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Valid reports whether both values are within range.
func (c Coords) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// ParseCoords parses a "lat,lon" pair.
func ParseCoords(raw string) (Coords, error) {
	latRaw, lonRaw, ok := strings.Cut(strings.TrimSpace(raw), ",")
	if !ok {
		return Coords{}, fmt.Errorf("parse coords %q: want lat,lon", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return Coords{}, fmt.Errorf("parse latitude %q: %w", latRaw, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonRaw), 64)
	if err != nil {
		return Coords{}, fmt.Errorf("parse longitude %q: %w", lonRaw, err)
	}
	c := Coords{Latitude: lat, Longitude: lon}
	if !c.Valid() {
		return Coords{}, fmt.Errorf("coords %q out of range", raw)
	}
	return c, nil
}

// StaticLocator always reports the same position.
type StaticLocator struct {
	Coords Coords
}

// Locate implements Locator.
func (s StaticLocator) Locate(context.Context) (Coords, error) {
	return s.Coords, nil
}
