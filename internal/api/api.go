// Package api holds the wire types of the trip HTTP API. Both the server
// handlers and the client speak these shapes.
package api

import (
	"fmt"
	"time"
)

// HeaderRequestID carries the client's draft id so server logs can be joined
// with client logs.
const HeaderRequestID = "X-Request-Id"

// instantLayout is ISO-8601 with milliseconds in UTC, e.g. 2024-01-10T00:00:00.000Z.
const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// CreateTripRequest is the body of POST /trips. Invites are plain strings;
// the server checks them with the same rule the planner applies.
type CreateTripRequest struct {
	Destination    string   `json:"destination"`
	StartsAt       string   `json:"starts_at"`
	EndsAt         string   `json:"ends_at"`
	EmailsToInvite []string `json:"emails_to_invite"`
}

// CreateTripResponse is the body of a successful POST /trips.
type CreateTripResponse struct {
	TripID string `json:"tripId"`
}

// TripBody is the trip as the API exposes it.
type TripBody struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	IsConfirmed bool   `json:"is_confirmed"`
}

// TripResponse is the body of GET /trips/{id}.
type TripResponse struct {
	Trip TripBody `json:"trip"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// FormatInstant renders t in UTC with millisecond precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(instantLayout)
}

// ParseInstant accepts RFC 3339 timestamps with or without fractional seconds.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q: %w", s, err)
	}
	return t.UTC(), nil
}
