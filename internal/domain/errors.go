package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested trip does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a business rule (short
// destination, incomplete date range, malformed email).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDuplicate is returned when an email is already on the guest list.
// It is a notice for the user, not a failure of the workflow.
var ErrDuplicate = errors.New("duplicate entry")

// ErrRemoteService wraps any failure of the remote trip service, whether the
// service rejected the request or could not be reached.
var ErrRemoteService = errors.New("remote service error")

// ErrStorage wraps failures of the local current-trip store.
var ErrStorage = errors.New("storage error")

// Validation fields.
const (
	FieldDestination = "destination"
	FieldDates       = "dates"
	FieldEmail       = "email"
)

// Validation reasons.
const (
	ReasonRequired      = "required"
	ReasonTooShort      = "too_short"
	ReasonIncomplete    = "incomplete"
	ReasonInvalidFormat = "invalid_format"
	ReasonBeforeMin     = "before_min"
	ReasonOrder         = "out_of_order"
)

// ValidationError names the field and the rule that rejected it, so the
// presentation layer can pick a message without re-deriving the rule.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Reason  string
	Message string
}

// NewValidationError builds a ValidationError for field failing reason.
func NewValidationError(field, reason, message string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
