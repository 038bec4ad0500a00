package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/i18n"
)

// TripServer is the remote trip service as seen by the client.
// *tripclient.Client satisfies it.
type TripServer interface {
	// CreateTrip creates a trip and returns its id.
	CreateTrip(ctx context.Context, trip domain.NewTrip) (string, error)

	// GetTripByID fetches a trip. Returns domain.ErrNotFound if it does not exist.
	GetTripByID(ctx context.Context, id string) (domain.Trip, error)
}

// TripStore remembers which trip the device is currently planning.
// *localstore.Store satisfies it.
type TripStore interface {
	// CurrentTripID returns the stored id and whether one is stored.
	CurrentTripID(ctx context.Context) (string, bool, error)
	SetCurrentTripID(ctx context.Context, id string) error
	ClearCurrentTripID(ctx context.Context) error
}

// Navigator moves the user between screens.
type Navigator interface {
	// OpenTrip shows the detail view of a trip.
	OpenTrip(ctx context.Context, tripID string)
	// OpenCreateForm shows the trip creation form.
	OpenCreateForm(ctx context.Context)
}

// Notifier shows an alert to the user.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// ResumeOutcome is how a Resume call ended.
type ResumeOutcome int

const (
	// ResumeNoActiveTrip means nothing is stored locally. This is a normal
	// state, not an error.
	ResumeNoActiveTrip ResumeOutcome = iota
	// ResumeOpened means the stored trip was fetched and opened.
	ResumeOpened
	// ResumeFetchFailed means a trip id is stored but the trip could not be
	// fetched. The id is kept.
	ResumeFetchFailed
)

func (o ResumeOutcome) String() string {
	switch o {
	case ResumeOpened:
		return "opened"
	case ResumeFetchFailed:
		return "fetch_failed"
	default:
		return "no_active_trip"
	}
}

// ResumeResult reports what Resume found.
type ResumeResult struct {
	Outcome ResumeOutcome
	TripID  string
	Trip    domain.Trip
}

// TripSyncService keeps the remote trip and the locally remembered trip id in
// step: it creates trips, records their ids, and reopens them on startup.
type TripSyncService struct {
	server TripServer
	store  TripStore
	nav    Navigator
	notify Notifier
	log    *slog.Logger
}

// NewTripSyncService constructs a TripSyncService. A nil logger means slog.Default().
func NewTripSyncService(server TripServer, store TripStore, nav Navigator, notify Notifier, log *slog.Logger) *TripSyncService {
	if log == nil {
		log = slog.Default()
	}
	return &TripSyncService{server: server, store: store, nav: nav, notify: notify, log: log}
}

// Create sends the draft to the remote service once and returns the new trip id.
// Remote failures are returned wrapped in domain.ErrRemoteService; the original
// error stays reachable through errors.Is / errors.As.
func (s *TripSyncService) Create(ctx context.Context, draft domain.TripDraft) (string, error) {
	if !draft.Dates.Complete() {
		return "", domain.NewValidationError(domain.FieldDates, domain.ReasonIncomplete,
			"start and end dates are required")
	}
	trip := domain.NewTrip{
		DraftID:        draft.ID,
		Destination:    draft.Destination,
		StartsAt:       draft.Dates.Start.Instant(),
		EndsAt:         draft.Dates.End.Instant(),
		EmailsToInvite: append([]string{}, draft.InvitedEmails...),
	}

	id, err := s.server.CreateTrip(ctx, trip)
	if err != nil {
		return "", fmt.Errorf("service.TripSyncService.Create: %w: %w", domain.ErrRemoteService, err)
	}
	s.log.InfoContext(ctx, "trip created remotely", "trip_id", id, "draft_id", draft.ID,
		"guests", len(trip.EmailsToInvite))
	return id, nil
}

// PersistAndNavigate remembers tripID on this device and opens the trip.
//
// If the id cannot be stored the user is warned and the error (wrapping
// domain.ErrStorage) is returned. The trip already exists remotely, so the
// create is not retried; the caller may still open the trip by id.
func (s *TripSyncService) PersistAndNavigate(ctx context.Context, tripID string) error {
	if err := s.store.SetCurrentTripID(ctx, tripID); err != nil {
		s.log.WarnContext(ctx, "could not persist current trip id", "trip_id", tripID, "error", err)
		s.notify.Notify(ctx, domain.Notice{
			Level: domain.NoticeWarning,
			Title: i18n.KeyTitleSaveTrip,
			Key:   i18n.KeySaveFailed,
		})
		return fmt.Errorf("service.TripSyncService.PersistAndNavigate: %w", wrapStorage(err))
	}
	s.nav.OpenTrip(ctx, tripID)
	return nil
}

// Resume reopens the trip remembered on this device.
//
//   - Nothing stored, or the store cannot be read: ResumeNoActiveTrip, no remote call.
//   - Trip fetched: the detail view is opened, ResumeOpened.
//   - Fetch failed: the user is told, the creation form is opened, the stored
//     id is kept, and the error (wrapping domain.ErrRemoteService) is returned.
func (s *TripSyncService) Resume(ctx context.Context) (ResumeResult, error) {
	id, ok, err := s.store.CurrentTripID(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "could not read current trip id; treating as no active trip", "error", err)
		return ResumeResult{Outcome: ResumeNoActiveTrip}, nil
	}
	if !ok {
		return ResumeResult{Outcome: ResumeNoActiveTrip}, nil
	}

	trip, err := s.server.GetTripByID(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "could not fetch current trip", "trip_id", id, "error", err)
		s.notify.Notify(ctx, domain.Notice{
			Level: domain.NoticeError,
			Title: i18n.KeyTitleResume,
			Key:   i18n.KeyResumeFailed,
		})
		s.nav.OpenCreateForm(ctx)
		return ResumeResult{Outcome: ResumeFetchFailed, TripID: id},
			fmt.Errorf("service.TripSyncService.Resume: %w: %w", domain.ErrRemoteService, err)
	}

	s.nav.OpenTrip(ctx, trip.ID)
	return ResumeResult{Outcome: ResumeOpened, TripID: trip.ID, Trip: trip}, nil
}

// Trip fetches a trip for the detail view.
func (s *TripSyncService) Trip(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.server.GetTripByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripSyncService.Trip: %w: %w", domain.ErrRemoteService, err)
	}
	return trip, nil
}

// CurrentTripID returns the id remembered on this device, if any.
func (s *TripSyncService) CurrentTripID(ctx context.Context) (string, bool, error) {
	id, ok, err := s.store.CurrentTripID(ctx)
	if err != nil {
		return "", false, fmt.Errorf("service.TripSyncService.CurrentTripID: %w", wrapStorage(err))
	}
	return id, ok, nil
}

// Forget clears the remembered trip id. The remote trip is untouched.
func (s *TripSyncService) Forget(ctx context.Context) error {
	if err := s.store.ClearCurrentTripID(ctx); err != nil {
		return fmt.Errorf("service.TripSyncService.Forget: %w", wrapStorage(err))
	}
	return nil
}

// wrapStorage makes sure a store error matches domain.ErrStorage.
func wrapStorage(err error) error {
	if errors.Is(err, domain.ErrStorage) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}
