package planner

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/i18n"
)

// MinDestinationLen is the shortest destination the form accepts.
const MinDestinationLen = 4

// ErrBusy is returned when a submission is already in flight.
var ErrBusy = errors.New("submission already in progress")

// ErrInvalidTransition is returned when an operation is not allowed from the
// form's current step (e.g. submitting from the trip details step).
var ErrInvalidTransition = errors.New("invalid form transition")

// ErrFieldLocked is returned when a field is edited outside the step that owns it.
var ErrFieldLocked = errors.New("field is locked in the current step")

// Step is a state of the trip form.
type Step int

const (
	// StepTripDetails collects the destination and the date range.
	StepTripDetails Step = iota + 1
	// StepAddEmail collects guests; destination and dates are read-only.
	StepAddEmail
	// StepSubmitting means a create call is in flight.
	StepSubmitting
	// StepSubmitted is terminal: the trip exists remotely.
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepTripDetails:
		return "TRIP_DETAILS"
	case StepAddEmail:
		return "ADD_EMAIL"
	case StepSubmitting:
		return "SUBMITTING"
	case StepSubmitted:
		return "SUBMITTED"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// TripSubmitter creates the trip remotely and then records it locally.
// *service.TripSyncService satisfies it.
type TripSubmitter interface {
	Create(ctx context.Context, draft domain.TripDraft) (string, error)
	PersistAndNavigate(ctx context.Context, tripID string) error
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, n domain.Notice) (bool, error)
}

// Notifier shows an alert to the user.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notice)
}

// FormController is the step form state machine. It owns the TripDraft and is
// the only thing that mutates it.
//
// TRIP_DETAILS --Advance--> ADD_EMAIL --Advance+confirm--> SUBMITTING --> SUBMITTED
//
//	^                        |                            |
//	+--------Retreat---------+<-------create failed-------+
type FormController struct {
	submitter TripSubmitter
	confirmer Confirmer
	notifier  Notifier
	now       func() time.Time
	newID     func() string
	log       *slog.Logger

	mu     sync.Mutex
	step   Step
	draft  domain.TripDraft
	tripID string
}

// Option configures a FormController.
type Option func(*FormController)

// WithClock overrides time.Now, used for the minimum selectable date.
func WithClock(now func() time.Time) Option {
	return func(c *FormController) { c.now = now }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(c *FormController) { c.log = log }
}

// WithDraftIDs overrides the draft id generator.
func WithDraftIDs(newID func() string) Option {
	return func(c *FormController) { c.newID = newID }
}

// NewFormController returns a controller on the trip details step with an
// empty draft.
func NewFormController(submitter TripSubmitter, confirmer Confirmer, notifier Notifier, opts ...Option) *FormController {
	c := &FormController{
		submitter: submitter,
		confirmer: confirmer,
		notifier:  notifier,
		now:       time.Now,
		newID:     NewDraftID,
		log:       slog.Default(),
		step:      StepTripDetails,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.draft = domain.TripDraft{ID: c.newID()}
	return c
}

// NewDraftID returns a new ULID string.
func NewDraftID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Step returns the current step.
func (c *FormController) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Busy reports whether a submission is in flight.
func (c *FormController) Busy() bool {
	return c.Step() == StepSubmitting
}

// Editable reports whether destination and dates can be changed.
func (c *FormController) Editable() bool {
	return c.Step() == StepTripDetails
}

// Draft returns a copy of the current draft.
func (c *FormController) Draft() domain.TripDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// TripID returns the id of the created trip once the form is SUBMITTED.
func (c *FormController) TripID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tripID
}

// MarkedDates returns the calendar projection of the draft's range.
func (c *FormController) MarkedDates() domain.MarkedDates {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MarkedDates(c.draft.Dates)
}

// MinSelectableDate is the first day the calendar should offer.
func (c *FormController) MinSelectableDate() domain.CalendarDate {
	return MinSelectableDate(c.now())
}

// SetDestination replaces the draft's destination.
func (c *FormController) SetDestination(destination string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != StepTripDetails {
		return fmt.Errorf("%w: destination in %s", ErrFieldLocked, c.step)
	}
	c.draft.Destination = destination
	return nil
}

// PickDate folds a calendar pick into the draft's range and returns the new range.
// Days before today are rejected.
func (c *FormController) PickDate(day domain.CalendarDate) (domain.DateRange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != StepTripDetails {
		return c.draft.Dates.Clone(), fmt.Errorf("%w: dates in %s", ErrFieldLocked, c.step)
	}
	if first := MinSelectableDate(c.now()); day.Before(first) {
		return c.draft.Dates.Clone(), domain.NewValidationError(domain.FieldDates, domain.ReasonBeforeMin,
			fmt.Sprintf("%s is before %s", day, first))
	}
	c.draft.Dates = PickDate(c.draft.Dates, day)
	return c.draft.Dates.Clone(), nil
}

// AddGuest invites email. See AddGuest for the error contract.
func (c *FormController) AddGuest(email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != StepAddEmail {
		return fmt.Errorf("%w: guests in %s", ErrFieldLocked, c.step)
	}
	guests, err := AddGuest(c.draft.InvitedEmails, email)
	if err != nil {
		return err
	}
	c.draft.InvitedEmails = guests
	return nil
}

// RemoveGuest uninvites email. Unknown addresses are ignored.
func (c *FormController) RemoveGuest(email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step != StepAddEmail {
		return fmt.Errorf("%w: guests in %s", ErrFieldLocked, c.step)
	}
	c.draft.InvitedEmails = RemoveGuest(c.draft.InvitedEmails, email)
	return nil
}

// Advance moves the form forward.
//
// From TRIP_DETAILS it validates the destination and dates and moves to
// ADD_EMAIL; a *domain.ValidationError leaves the step unchanged.
// From ADD_EMAIL it asks for confirmation and, if the user agrees, submits.
// Declining is not an error; the form stays on ADD_EMAIL.
func (c *FormController) Advance(ctx context.Context) (Step, error) {
	c.mu.Lock()
	switch c.step {
	case StepTripDetails:
		defer c.mu.Unlock()
		if err := validateDetails(c.draft); err != nil {
			return c.step, err
		}
		c.step = StepAddEmail
		return c.step, nil
	case StepAddEmail:
		c.mu.Unlock()
	case StepSubmitting:
		c.mu.Unlock()
		return StepSubmitting, ErrBusy
	default:
		defer c.mu.Unlock()
		return c.step, fmt.Errorf("%w: advance from %s", ErrInvalidTransition, c.step)
	}

	ok, err := c.confirmer.Confirm(ctx, domain.Notice{
		Title: i18n.KeyTitleNewTrip,
		Key:   i18n.KeyConfirmTrip,
	})
	if err != nil {
		return c.Step(), fmt.Errorf("planner.FormController.Advance: confirm: %w", err)
	}
	if !ok {
		return c.Step(), nil
	}
	if _, err := c.Submit(ctx); err != nil {
		return c.Step(), err
	}
	return c.Step(), nil
}

// Retreat returns from ADD_EMAIL to TRIP_DETAILS and unlocks the destination
// and dates. On TRIP_DETAILS it does nothing.
func (c *FormController) Retreat() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.step {
	case StepAddEmail, StepTripDetails:
		c.step = StepTripDetails
		return nil
	case StepSubmitting:
		return ErrBusy
	default:
		return fmt.Errorf("%w: retreat from %s", ErrInvalidTransition, c.step)
	}
}

// Submit creates the trip and hands its id to the submitter for persistence.
// It is only allowed from ADD_EMAIL; a call while another submission is in
// flight returns ErrBusy without side effects.
//
// A failed create returns the form to ADD_EMAIL with the draft intact. Once the
// trip exists remotely the form is SUBMITTED and the id is returned even if
// persisting it locally failed (the error then matches domain.ErrStorage).
func (c *FormController) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.step == StepSubmitting {
		c.mu.Unlock()
		return "", ErrBusy
	}
	if c.step != StepAddEmail {
		step := c.step
		c.mu.Unlock()
		return "", fmt.Errorf("%w: submit from %s", ErrInvalidTransition, step)
	}
	if err := validateDetails(c.draft); err != nil {
		c.mu.Unlock()
		return "", err
	}
	c.step = StepSubmitting
	draft := c.draft.Clone()
	c.mu.Unlock()

	tripID, err := c.submitter.Create(ctx, draft)
	if err != nil {
		c.mu.Lock()
		c.step = StepAddEmail
		c.mu.Unlock()
		c.log.WarnContext(ctx, "trip create failed", "draft_id", draft.ID, "error", err)
		c.notifier.Notify(ctx, domain.Notice{
			Level: domain.NoticeError,
			Title: i18n.KeyTitleNewTrip,
			Key:   i18n.KeyTripCreateFail,
		})
		return "", err
	}

	c.mu.Lock()
	c.step = StepSubmitted
	c.tripID = tripID
	c.draft = domain.TripDraft{}
	c.mu.Unlock()

	c.log.InfoContext(ctx, "trip created", "draft_id", draft.ID, "trip_id", tripID)
	c.notifier.Notify(ctx, domain.Notice{
		Level: domain.NoticeInfo,
		Title: i18n.KeyTitleNewTrip,
		Key:   i18n.KeyTripCreated,
	})

	if err := c.submitter.PersistAndNavigate(ctx, tripID); err != nil {
		return tripID, err
	}
	return tripID, nil
}

// validateDetails enforces the TRIP_DETAILS rules in the order the user sees them:
//   - destination must be non-blank
//   - destination must have at least 4 characters
//   - both ends of the date range must be picked
func validateDetails(d domain.TripDraft) error {
	dest := strings.TrimSpace(d.Destination)
	if dest == "" {
		return domain.NewValidationError(domain.FieldDestination, domain.ReasonRequired,
			"destination is required")
	}
	if utf8.RuneCountInString(dest) < MinDestinationLen {
		return domain.NewValidationError(domain.FieldDestination, domain.ReasonTooShort,
			fmt.Sprintf("destination must have at least %d characters", MinDestinationLen))
	}
	if !d.Dates.Complete() {
		return domain.NewValidationError(domain.FieldDates, domain.ReasonIncomplete,
			"start and end dates are required")
	}
	return nil
}
