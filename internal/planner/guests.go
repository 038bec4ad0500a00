package planner

import (
	"fmt"

	"github.com/pkordes/tripplanner/internal/domain"
)

// AddGuest returns a new guest list with candidate appended in normalized form.
//   - A malformed address returns a *domain.ValidationError.
//   - An address already on the list returns domain.ErrDuplicate and the list
//     unchanged; callers show it as a notice.
//
// The input slice is never modified.
func AddGuest(guests []string, candidate string) ([]string, error) {
	email := NormalizeEmail(candidate)
	if !IsValidEmail(email) {
		return guests, domain.NewValidationError(domain.FieldEmail, domain.ReasonInvalidFormat,
			fmt.Sprintf("%q is not a valid email address", candidate))
	}
	if HasGuest(guests, email) {
		return guests, fmt.Errorf("%w: %s is already invited", domain.ErrDuplicate, email)
	}
	out := make([]string, 0, len(guests)+1)
	out = append(out, guests...)
	return append(out, email), nil
}

// RemoveGuest returns a new guest list without any entry matching email.
// Removing an address that is not on the list returns an equal copy.
func RemoveGuest(guests []string, email string) []string {
	key := NormalizeEmail(email)
	out := make([]string, 0, len(guests))
	for _, g := range guests {
		if NormalizeEmail(g) != key {
			out = append(out, g)
		}
	}
	return out
}

// HasGuest reports whether email is on the list, ignoring case.
func HasGuest(guests []string, email string) bool {
	key := NormalizeEmail(email)
	for _, g := range guests {
		if NormalizeEmail(g) == key {
			return true
		}
	}
	return false
}
