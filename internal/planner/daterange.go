package planner

import (
	"time"

	"github.com/pkordes/tripplanner/internal/domain"
)

// PickDate folds one calendar pick into the current range.
//
// A pick with no start, or after a complete range, starts a new range.
// A second pick completes the range, swapping the two days when the second
// is earlier, so Start <= End always holds afterwards.
func PickDate(current domain.DateRange, picked domain.CalendarDate) domain.DateRange {
	if !current.HasStart() || current.Complete() {
		return domain.DateRange{Start: picked}
	}
	if picked.Before(current.Start) {
		end := current.Start
		return domain.DateRange{Start: picked, End: &end}
	}
	end := picked
	return domain.DateRange{Start: current.Start, End: &end}
}

// MarkedDates projects a range onto the calendar: every day from Start to End
// inclusive is marked, with caps on the first and last day. An incomplete
// range marks only its start day. An empty range marks nothing.
func MarkedDates(r domain.DateRange) domain.MarkedDates {
	marked := domain.MarkedDates{}
	if !r.HasStart() {
		return marked
	}
	if r.End == nil {
		marked[r.Start] = domain.Marking{StartingDay: true}
		return marked
	}
	for d := r.Start; !d.After(*r.End); d = d.AddDays(1) {
		marked[d] = domain.Marking{
			StartingDay: d == r.Start,
			EndingDay:   d == *r.End,
		}
	}
	return marked
}

// MinSelectableDate is the earliest day the calendar lets the user pick: today.
func MinSelectableDate(now time.Time) domain.CalendarDate {
	return domain.DateOf(now)
}
