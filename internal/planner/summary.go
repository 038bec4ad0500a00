package planner

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/i18n"
)

// maxDestinationLen is how many characters of the destination fit in the
// one-line trip summary.
const maxDestinationLen = 14

// TruncateDestination shortens destinations longer than 14 characters to their
// first 14 characters followed by " ...".
func TruncateDestination(destination string) string {
	if utf8.RuneCountInString(destination) <= maxDestinationLen {
		return destination
	}
	runes := []rune(destination)
	return string(runes[:maxDestinationLen]) + " ..."
}

// RangeText renders a range the way the date field shows it, e.g.
// "10 to 15 of Jan". The month is the start's month. An incomplete range
// renders as an empty string.
func RangeText(tag language.Tag, r domain.DateRange) string {
	if !r.Complete() {
		return ""
	}
	return i18n.Sprintf(tag, i18n.KeyRangeText,
		twoDigits(r.Start.Day), twoDigits(r.End.Day), i18n.MonthShort(tag, r.Start.Month))
}

// DisplayText renders the one-line trip summary, e.g.
// "São Paulo from 10 to 15 of Jan".
func DisplayText(tag language.Tag, destination string, r domain.DateRange) string {
	if !r.Complete() {
		return TruncateDestination(destination)
	}
	return i18n.Sprintf(tag, i18n.KeyTripSummary,
		TruncateDestination(destination),
		twoDigits(r.Start.Day), twoDigits(r.End.Day), i18n.MonthShort(tag, r.Start.Month))
}

// TripText is DisplayText for a trip fetched from the remote service.
func TripText(tag language.Tag, trip domain.Trip) string {
	return DisplayText(tag, trip.Destination, trip.Dates())
}

// GuestSummary renders the guest field, e.g. "2 person(s) invited".
// It is empty when nobody has been invited.
func GuestSummary(tag language.Tag, guests []string) string {
	if len(guests) == 0 {
		return ""
	}
	return i18n.Sprintf(tag, i18n.KeyGuestCount, len(guests))
}

func twoDigits(day int) string {
	return fmt.Sprintf("%02d", day)
}
