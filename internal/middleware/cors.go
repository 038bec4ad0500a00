// Package middleware provides reusable HTTP middleware for the trip service.
package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/pkordes/tripplanner/internal/api"
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
// The draft id header is allowed so browser clients can correlate their requests.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", api.HeaderRequestID},
		ExposedHeaders: []string{api.HeaderRequestID},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
