// Package handler implements the HTTP handlers for the trip service.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, openapi.go) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
)

// TripServicer defines the business operations the trip handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// Server serves every API endpoint.
type Server struct {
	trips   TripServicer
	openAPI []byte
}

// NewServer constructs the Server with all its dependencies. openAPI is the
// document served at /openapi.yaml; nil disables that route.
func NewServer(trips TripServicer, openAPI []byte) *Server {
	return &Server{trips: trips, openAPI: openAPI}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}

// Routes returns a chi router with every endpoint mounted. Cross-cutting
// middleware is added by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	if s.openAPI != nil {
		r.Get("/openapi.yaml", s.GetOpenAPI)
	}
	if s.trips != nil {
		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/{id}", s.GetTrip)
		})
	}
	return r
}
