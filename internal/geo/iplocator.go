package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultIPLookupURL answers with the caller's approximate position.
// Sample response: {"status":"success","city":"Seoul","lat":37.5665,"lon":126.978}
const DefaultIPLookupURL = "http://ip-api.com/json/"

// IPLocator estimates the host position from its public IP address.
type IPLocator struct {
	url        string
	httpClient *http.Client
}

// NewIPLocator builds an IPLocator for lookupURL, or DefaultIPLookupURL when blank.
func NewIPLocator(lookupURL string) *IPLocator {
	u := strings.TrimSpace(lookupURL)
	if u == "" {
		u = DefaultIPLookupURL
	}
	return &IPLocator{
		url:        u,
		httpClient: &http.Client{},
	}
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate implements Locator.
func (l *IPLocator) Locate(ctx context.Context) (Coords, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return Coords{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Coords{}, fmt.Errorf("%w: lookup returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var payload ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Coords{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if payload.Status != "success" {
		return Coords{}, fmt.Errorf("%w: %s", ErrUnavailable, payload.Message)
	}

	coords := Coords{Latitude: payload.Lat, Longitude: payload.Lon}
	if !coords.Valid() {
		return Coords{}, fmt.Errorf("%w: coords out of range", ErrUnavailable)
	}
	return coords, nil
}
