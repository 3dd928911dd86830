// Package weatherapi provides an HTTP client for the weatherapi.com forecast endpoint.
//
// # Overview
//
// The client resolves a location query to a Report: current conditions plus
// today's forecast block. A query is either a free-form place name ("Seoul",
// "New York") or a "lat,lon" pair produced by the geo package.
//
//	client, err := weatherapi.NewClient(cfg.APIKey)
//	if err != nil {
//		return fmt.Errorf("init weather client: %w", err)
//	}
//	report, err := client.Fetch(ctx, "Seoul")
//
// # Request Shape
//
// Every Fetch issues exactly one request:
//
//	GET {base}/forecast.json?key=<api key>&q=<query>&days=1&aqi=no
//
// # Error Handling
//
// The provider signals failures with an "error" object in the body, which
// takes precedence over the HTTP status:
//
//   - *APIError: provider error object; NotFound() reports code 1006 and
//     errors.Is(err, ErrLocationNotFound) matches it
//   - "api forecast.json returned status N": non-2xx without an error object
//   - "execute request: ...": transport failures (the API key is redacted)
//   - "decode response: ...": malformed JSON
//   - ErrIncompleteReport: a success payload without a forecast day
//
// A Report is either fully populated or not returned at all.
//
// # Design Rationale
//
// There is no caching, no retry, and no client-side timeout. Each call is a
// fresh round trip bounded only by the caller's context.
package weatherapi
