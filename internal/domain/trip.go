// Package domain contains the core data types for the trip planner.
// It is imported by every other internal package (planner, service, repo,
// handler, tripclient) and depends on nothing but the standard library.
package domain

import "time"

// Trip is a confirmed trip as recorded by the remote trip service.
// The client only ever reads it; it is never mutated locally.
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Dates returns the whole-day range the trip covers.
func (t Trip) Dates() DateRange {
	end := DateOf(t.EndsAt.UTC())
	return DateRange{Start: DateOf(t.StartsAt.UTC()), End: &end}
}

// NewTrip is the payload sent to the remote trip service to create a trip.
// StartsAt and EndsAt are UTC instants at midnight of the picked days.
type NewTrip struct {
	// DraftID correlates the create call with the draft that produced it.
	// It travels as a request header, not as part of the trip record.
	DraftID        string
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	EmailsToInvite []string
}

// TripDraft is the in-progress trip collected by the step form.
// It is owned by the form controller and discarded once the trip is created.
type TripDraft struct {
	ID          string
	Destination string
	Dates       DateRange

	// InvitedEmails holds normalized addresses in the order they were added.
	InvitedEmails []string
}

// Clone returns a copy of the draft that shares no mutable state with d.
func (d TripDraft) Clone() TripDraft {
	out := d
	out.Dates = d.Dates.Clone()
	out.InvitedEmails = append([]string(nil), d.InvitedEmails...)
	return out
}
