// Package dashboard resolves the active query, fetches a report and derives
// the view model shown by the UI.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/five82/nimbus/internal/geo"
	"github.com/five82/nimbus/internal/weatherapi"
)

// NotFoundMessage is the single user-visible failure state.
const NotFoundMessage = "location not found"

// Request is the user input for one render cycle.
type Request struct {
	Text string
	// GPS is set only when the user just triggered a lookup and it succeeded.
	GPS *geo.Coords
}

// ResolveQuery picks the effective query: GPS coordinates, then the typed
// text, then the session target.
func ResolveQuery(req Request, target string) string {
	if req.GPS != nil {
		return req.GPS.Query()
	}
	if text := strings.TrimSpace(req.Text); text != "" {
		return text
	}
	return strings.TrimSpace(target)
}

// Dashboard connects the weather provider and the host locator.
type Dashboard struct {
	fetcher weatherapi.Fetcher
	locator geo.Locator
	logger  *slog.Logger
}

// New builds a Dashboard. A nil locator disables GPS lookups and a nil logger
// discards log output.
func New(fetcher weatherapi.Fetcher, locator geo.Locator, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dashboard{fetcher: fetcher, locator: locator, logger: logger}
}

// Load fetches query once and renders the result.
func (d *Dashboard) Load(ctx context.Context, query string) ViewModel {
	report, err := d.fetcher.Fetch(ctx, query)
	if err != nil {
		d.logger.Warn("weather fetch failed",
			slog.String("query", query),
			slog.String("kind", errorKind(err)),
			slog.Any("error", err),
		)
	} else {
		d.logger.Debug("weather fetched",
			slog.String("query", query),
			slog.String("location", report.Location),
		)
	}
	vm := Render(report, err)
	vm.Query = query
	return vm
}

// Locate asks the host for its position. Failure is not an error for the
// caller: it reports false and the text query stays in effect.
func (d *Dashboard) Locate(ctx context.Context) (*geo.Coords, bool) {
	if d.locator == nil {
		d.logger.Info("gps lookup skipped: no locator configured")
		return nil, false
	}
	coords, err := d.locator.Locate(ctx)
	if err != nil {
		d.logger.Info("gps lookup unavailable", slog.Any("error", err))
		return nil, false
	}
	return &coords, true
}

func errorKind(err error) string {
	var apiErr *weatherapi.APIError
	switch {
	case errors.Is(err, weatherapi.ErrLocationNotFound):
		return "not_found"
	case errors.As(err, &apiErr):
		return "provider"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport"
	}
}
