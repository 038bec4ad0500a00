// Package tripclient is the HTTP client of the remote trip service.
package tripclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkordes/tripplanner/internal/api"
	"github.com/pkordes/tripplanner/internal/domain"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// APIError is a non-2xx answer from the trip service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("trip service: HTTP %d", e.Status)
	}
	return fmt.Sprintf("trip service: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// Unwrap maps 404 to domain.ErrNotFound and 422 to domain.ErrValidation.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnprocessableEntity:
		return domain.ErrValidation
	default:
		return nil
	}
}

// Client talks JSON to the trip service. It satisfies service.TripServer.
type Client struct {
	base *url.URL
	http *http.Client
	log  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("tripclient.New: parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("tripclient.New: base url %q must be http or https", baseURL)
	}
	c := &Client{
		base: u,
		http: &http.Client{Timeout: 10 * time.Second},
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateTrip posts the trip and returns the id the service assigned.
func (c *Client) CreateTrip(ctx context.Context, trip domain.NewTrip) (string, error) {
	body := api.CreateTripRequest{
		Destination:    trip.Destination,
		StartsAt:       api.FormatInstant(trip.StartsAt),
		EndsAt:         api.FormatInstant(trip.EndsAt),
		EmailsToInvite: append([]string{}, trip.EmailsToInvite...),
	}
	var headers http.Header
	if trip.DraftID != "" {
		headers = http.Header{api.HeaderRequestID: []string{trip.DraftID}}
	}

	var resp api.CreateTripResponse
	if err := c.do(ctx, http.MethodPost, "/trips", headers, body, &resp); err != nil {
		return "", fmt.Errorf("tripclient.CreateTrip: %w", err)
	}
	if resp.TripID == "" {
		return "", errors.New("tripclient.CreateTrip: response has no tripId")
	}
	return resp.TripID, nil
}

// GetTripByID fetches a trip. A 404 matches domain.ErrNotFound.
func (c *Client) GetTripByID(ctx context.Context, id string) (domain.Trip, error) {
	var resp api.TripResponse
	if err := c.do(ctx, http.MethodGet, "/trips/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return domain.Trip{}, fmt.Errorf("tripclient.GetTripByID: %w", err)
	}

	startsAt, err := api.ParseInstant(resp.Trip.StartsAt)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("tripclient.GetTripByID: starts_at: %w", err)
	}
	endsAt, err := api.ParseInstant(resp.Trip.EndsAt)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("tripclient.GetTripByID: ends_at: %w", err)
	}
	return domain.Trip{
		ID:          resp.Trip.ID,
		Destination: resp.Trip.Destination,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		IsConfirmed: resp.Trip.IsConfirmed,
	}, nil
}

// Health checks that the service is up.
func (c *Client) Health(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, nil, nil); err != nil {
		return fmt.Errorf("tripclient.Health: %w", err)
	}
	return nil
}

// do sends one request. in, when non-nil, is JSON-encoded as the body; out,
// when non-nil, receives the decoded 2xx response.
func (c *Client) do(ctx context.Context, method, path string, headers http.Header, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	c.log.DebugContext(ctx, "trip service call",
		"method", method,
		"path", path,
		"status", res.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	var env api.ErrorResponse
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	return apiErr
}
