// Package planner implements the trip-creation workflow: the step form
// controller and the pure rules it coordinates (date range picking, the guest
// list, and email validation). Nothing in this package performs I/O; remote
// calls and alerts go through the interfaces declared in form.go.
package planner

import (
	"regexp"
	"strings"
)

// emailRegex accepts a local part of non-space, non-"@" characters followed by
// a dotted domain whose labels are all non-empty.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@.]+(\.[^\s@.]+)+$`)

// IsValidEmail reports whether s has the shape of an email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// NormalizeEmail returns the comparison and storage form of an address:
// surrounding whitespace trimmed and lowercased.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
