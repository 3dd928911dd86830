package weatherapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Fetcher defines the interface for resolving a location query to a report.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Fetch(ctx context.Context, query string) (*Report, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the weatherapi.com forecast endpoint.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://api.weatherapi.com/v1"
	defaultUserAgent = "nimbus/0.1"
	forecastPath     = "forecast.json"
	forecastDays     = "1"
)

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if u, err := parseBaseURL(raw); err == nil {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, fmt.Errorf("api key is empty")
	}
	base, err := parseBaseURL(DefaultBaseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		apiKey:  key,
		// No Timeout: the caller's context is the only deadline.
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch retrieves current conditions and today's forecast for query, which is
// either a place name or a "lat,lon" pair.
func (c *Client) Fetch(ctx context.Context, query string) (*Report, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("query is empty")
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", q)
	values.Set("days", forecastDays)
	values.Set("aqi", "no")

	var payload forecastResponse
	if err := c.get(ctx, forecastPath, values, &payload); err != nil {
		return nil, err
	}
	return payload.report()
}

func (c *Client) get(ctx context.Context, path string, values url.Values, dest any) error {
	reqURL := c.baseURL.JoinPath(path)
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", redactKey(err, c.apiKey))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	// The provider reports unresolvable locations (and bad keys) as an error
	// object, usually alongside a 4xx status.
	if apiErr := parseAPIError(body); apiErr != nil {
		apiErr.Status = resp.StatusCode
		return apiErr
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseAPIError(body []byte) *APIError {
	var envelope struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return nil
	}
	return &APIError{Code: envelope.Error.Code, Message: envelope.Error.Message}
}

// redactKey keeps the API key out of url.Error messages, which embed the
// full request URL.
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) || key == "" {
		return err
	}
	redacted := *urlErr
	redacted.URL = strings.ReplaceAll(urlErr.URL, url.QueryEscape(key), "REDACTED")
	return &redacted
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
