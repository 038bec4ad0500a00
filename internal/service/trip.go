// Package service contains the business logic of the trip planner.
//
// TripSyncService is the client side: it talks to the remote trip service and
// the local current-trip store. TripService is the reference server side: it
// validates new trips and orchestrates repo calls. No SQL or HTTP lives here;
// both depend on interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/planner"
	"github.com/pkordes/tripplanner/internal/repo"
)

// TripService implements the server-side rules for trips.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip together with its invites.
// Emails are normalized and de-duplicated before they reach the repo.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error) {
	trip.Destination = strings.TrimSpace(trip.Destination)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	var guests []string
	for _, email := range trip.EmailsToInvite {
		next, err := planner.AddGuest(guests, email)
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return domain.Trip{}, err
		}
		guests = next
	}
	trip.EmailsToInvite = guests

	created, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// validateTrip enforces the rules a new trip must meet:
//   - Destination must be non-blank and at least planner.MinDestinationLen characters.
//   - StartsAt and EndsAt must be set, and EndsAt must not be before StartsAt.
func validateTrip(trip domain.NewTrip) error {
	if trip.Destination == "" {
		return domain.NewValidationError(domain.FieldDestination, domain.ReasonRequired,
			"destination is required")
	}
	if utf8.RuneCountInString(trip.Destination) < planner.MinDestinationLen {
		return domain.NewValidationError(domain.FieldDestination, domain.ReasonTooShort,
			fmt.Sprintf("destination must have at least %d characters", planner.MinDestinationLen))
	}
	if trip.StartsAt.IsZero() || trip.EndsAt.IsZero() {
		return domain.NewValidationError(domain.FieldDates, domain.ReasonIncomplete,
			"starts_at and ends_at are required")
	}
	if trip.EndsAt.Before(trip.StartsAt) {
		return domain.NewValidationError(domain.FieldDates, domain.ReasonOrder,
			"ends_at must not be before starts_at")
	}
	return nil
}
