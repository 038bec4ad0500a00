package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tripplanner/internal/api"
	"github.com/pkordes/tripplanner/internal/domain"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body api.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "request body too large")
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusUnprocessableEntity, codeValidation, "request body is required")
		default:
			writeError(w, http.StatusBadRequest, codeBadRequest, "malformed JSON body: "+err.Error())
		}
		return
	}

	trip, err := requestToTrip(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, codeValidation, err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			validationFailed(w, err)
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateTripResponse{TripID: created.ID})
}

// GetTrip handles GET /trips/{id}. An id that is not a UUID cannot name a
// trip, so it is reported as not found.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		notFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFound(w, "trip not found")
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, api.TripResponse{Trip: tripToResponse(trip)})
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a CreateTripRequest body into a domain.NewTrip.
// Returns an error if a timestamp is missing or malformed.
func requestToTrip(body api.CreateTripRequest) (domain.NewTrip, error) {
	if body.StartsAt == "" || body.EndsAt == "" {
		return domain.NewTrip{}, errors.New("starts_at and ends_at are required")
	}
	startsAt, err := api.ParseInstant(body.StartsAt)
	if err != nil {
		return domain.NewTrip{}, fmt.Errorf("starts_at: %w", err)
	}
	endsAt, err := api.ParseInstant(body.EndsAt)
	if err != nil {
		return domain.NewTrip{}, fmt.Errorf("ends_at: %w", err)
	}
	return domain.NewTrip{
		Destination:    body.Destination,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		EmailsToInvite: body.EmailsToInvite,
	}, nil
}

// tripToResponse converts a domain.Trip into its wire form.
func tripToResponse(t domain.Trip) api.TripBody {
	return api.TripBody{
		ID:          t.ID,
		Destination: t.Destination,
		StartsAt:    api.FormatInstant(t.StartsAt),
		EndsAt:      api.FormatInstant(t.EndsAt),
		IsConfirmed: t.IsConfirmed,
	}
}
