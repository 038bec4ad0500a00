package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/i18n"
	"github.com/pkordes/tripplanner/internal/planner"
)

// console is the terminal front-end. It renders notices, asks yes/no
// questions, and plays the role of the navigator.
type console struct {
	tag language.Tag
	in  *bufio.Reader
	out io.Writer

	// openedTrip is the last trip the workflow asked to show. The new command
	// renders it once the create has been persisted.
	openedTrip string
}

func newConsole(tag language.Tag, in io.Reader, out io.Writer) *console {
	return &console{tag: tag, in: bufio.NewReader(in), out: out}
}

// Confirm prints the question and reads one line. End of input means no.
func (c *console) Confirm(_ context.Context, n domain.Notice) (bool, error) {
	fmt.Fprintf(c.out, "%s %s ", c.text(n), i18n.Sprintf(c.tag, i18n.KeyPromptYesNo))
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}

// Notify prints a notice on its own line.
func (c *console) Notify(_ context.Context, n domain.Notice) {
	fmt.Fprintln(c.out, c.text(n))
}

// OpenTrip records the trip to show; the command renders it.
func (c *console) OpenTrip(_ context.Context, tripID string) {
	c.openedTrip = tripID
}

// OpenCreateForm points the user at the creation command.
func (c *console) OpenCreateForm(_ context.Context) {
	fmt.Fprintln(c.out, i18n.Sprintf(c.tag, i18n.KeyStartNewTrip))
}

// println renders a catalog key on its own line.
func (c *console) println(key string, args ...any) {
	fmt.Fprintln(c.out, i18n.Sprintf(c.tag, key, args...))
}

// showTrip prints the trip detail view.
func (c *console) showTrip(trip domain.Trip) {
	fmt.Fprintln(c.out, planner.TripText(c.tag, trip))
	fmt.Fprintf(c.out, "id: %s\n", trip.ID)
}

// report renders the errors the form hands back to the presentation layer.
// It returns false for errors it does not know how to show.
func (c *console) report(err error) bool {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		title := i18n.KeyTitleTripDetails
		if verr.Field == domain.FieldEmail {
			title = i18n.KeyTitleGuest
		}
		c.Notify(context.Background(), domain.Notice{
			Level: domain.NoticeWarning,
			Title: title,
			Key:   validationKey(verr),
			Args:  validationArgs(verr),
		})
	case errors.Is(err, domain.ErrDuplicate):
		c.Notify(context.Background(), domain.Notice{
			Level: domain.NoticeWarning,
			Title: i18n.KeyTitleGuest,
			Key:   i18n.KeyDuplicateEmail,
		})
	case errors.Is(err, planner.ErrFieldLocked):
		c.println(i18n.KeyFieldLocked)
	case errors.Is(err, planner.ErrBusy):
		c.println(i18n.KeyBusy)
	default:
		return false
	}
	return true
}

func (c *console) text(n domain.Notice) string {
	msg := i18n.Sprintf(c.tag, n.Key, n.Args...)
	if n.Title == "" {
		return msg
	}
	return i18n.Sprintf(c.tag, n.Title) + ": " + msg
}

// validationKey is the catalog key "validation.<field>.<reason>".
func validationKey(verr *domain.ValidationError) string {
	return "validation." + verr.Field + "." + verr.Reason
}

func validationArgs(verr *domain.ValidationError) []any {
	if verr.Field == domain.FieldDestination && verr.Reason == domain.ReasonTooShort {
		return []any{planner.MinDestinationLen}
	}
	return nil
}

// autoYes answers every question with yes, for --yes.
type autoYes struct{}

func (autoYes) Confirm(context.Context, domain.Notice) (bool, error) { return true, nil }
