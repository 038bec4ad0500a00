// Package tripcal exports a trip as an iCalendar file so it can be added to
// any calendar application.
package tripcal

import (
	"errors"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"golang.org/x/text/language"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/planner"
)

const productID = "-//tripplanner//planner//EN"

// Export renders trip as a calendar with one all-day event covering every day
// of the trip. DTEND is exclusive, so it is the day after the last day.
// now stamps the event.
func Export(tag language.Tag, trip domain.Trip, now time.Time) (string, error) {
	if trip.ID == "" {
		return "", errors.New("tripcal.Export: trip has no id")
	}
	dates := trip.Dates()

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	event := cal.AddEvent(trip.ID + "@tripplanner")
	event.SetDtStampTime(now.UTC())
	event.SetSummary(trip.Destination)
	event.SetLocation(trip.Destination)
	event.SetDescription(planner.TripText(tag, trip))
	event.SetAllDayStartAt(dates.Start.Instant())
	event.SetAllDayEndAt(dates.End.AddDays(1).Instant())

	return cal.Serialize(), nil
}

// Write is Export followed by a write to w.
func Write(w io.Writer, tag language.Tag, trip domain.Trip, now time.Time) error {
	out, err := Export(tag, trip, now)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, strings.NewReader(out))
	return err
}
