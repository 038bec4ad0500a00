package domain

import (
	"fmt"
	"sort"
	"time"
)

// dayLayout is the day string the calendar widget reports for a pick.
const dayLayout = "2006-01-02"

// CalendarDate is a whole calendar day with no time of day and no zone.
// The zero value means "no date".
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate builds a CalendarDate, normalizing out-of-range values the
// same way time.Date does (e.g. Jan 32 becomes Feb 1).
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// ParseCalendarDate parses a day string such as "2024-01-10". Longer ISO-8601
// strings are accepted and truncated to their date part.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if len(s) > len(dayLayout) {
		s = s[:len(dayLayout)]
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parse calendar date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero date.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Instant returns midnight UTC at the start of d.
func (d CalendarDate) Instant() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Instant().Before(other.Instant())
}

// After reports whether d is strictly later than other.
func (d CalendarDate) After(other CalendarDate) bool {
	return d.Instant().After(other.Instant())
}

// AddDays returns the date n days after d (n may be negative).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return DateOf(d.Instant().AddDate(0, 0, n))
}

// String formats d as "2006-01-02".
func (d CalendarDate) String() string {
	return d.Instant().Format(dayLayout)
}

// DateRange is a trip's picked days. End is nil until the second pick.
// When End is set, Start is never after End.
type DateRange struct {
	Start CalendarDate
	End   *CalendarDate
}

// HasStart reports whether at least one day has been picked.
func (r DateRange) HasStart() bool {
	return !r.Start.IsZero()
}

// Complete reports whether both the start and the end are set.
func (r DateRange) Complete() bool {
	return r.HasStart() && r.End != nil
}

// Clone returns a copy of r whose End does not alias r.End.
func (r DateRange) Clone() DateRange {
	if r.End == nil {
		return r
	}
	end := *r.End
	return DateRange{Start: r.Start, End: &end}
}

// Marking describes how a single day of a range is drawn on the calendar.
// Every marked day is inside the range; StartingDay and EndingDay flag the caps.
type Marking struct {
	StartingDay bool `json:"startingDay,omitempty"`
	EndingDay   bool `json:"endingDay,omitempty"`
}

// MarkedDates maps each day of a range to its marking.
type MarkedDates map[CalendarDate]Marking

// Days returns the marked days in chronological order.
func (m MarkedDates) Days() []CalendarDate {
	days := make([]CalendarDate, 0, len(m))
	for d := range m {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
