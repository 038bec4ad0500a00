package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"

	"github.com/pkordes/tripplanner/internal/config"
	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/i18n"
	"github.com/pkordes/tripplanner/internal/localstore"
	"github.com/pkordes/tripplanner/internal/planner"
	"github.com/pkordes/tripplanner/internal/service"
	"github.com/pkordes/tripplanner/internal/tripclient"
	"github.com/pkordes/tripplanner/internal/tripcal"
)

// env carries what every command needs. Collaborators that touch the disk
// or the network are opened per command so --help works without them.
type env struct {
	cfg config.ClientConfig
	tag language.Tag
	log *slog.Logger
	in  io.Reader
	out io.Writer
	now func() time.Time
}

// session is one command's wiring of the trip workflow.
type session struct {
	sync    *service.TripSyncService
	console *console
	close   func()
}

func (e *env) open(ctx context.Context) (*session, error) {
	store, err := localstore.Open(ctx, e.cfg.Home)
	if err != nil {
		return nil, err
	}
	client, err := tripclient.New(e.cfg.APIURL,
		tripclient.WithTimeout(e.cfg.HTTPTimeout),
		tripclient.WithLogger(e.log),
	)
	if err != nil {
		store.Close()
		return nil, err
	}
	con := newConsole(e.tag, e.in, e.out)
	return &session{
		sync:    service.NewTripSyncService(client, store, con, con, e.log),
		console: con,
		close: func() {
			if err := store.Close(); err != nil {
				e.log.Warn("close local store", "error", err)
			}
		},
	}, nil
}

// newCLIApp creates the CLI application with all commands. Without a command
// it resumes the current trip.
func newCLIApp(e *env) *cli.App {
	app := &cli.App{
		Name:      "planner",
		Usage:     "Plan a trip and invite your friends",
		Version:   Version,
		Reader:    e.in,
		Writer:    e.out,
		ErrWriter: e.out,
		Action:    resumeAction(e),
		Commands: []*cli.Command{
			resumeCmd(e),
			newCmd(e),
			showCmd(e),
			forgetCmd(e),
		},
	}
	// Guest emails may contain commas.
	app.DisableSliceFlagSeparator = true
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// resumeCmd creates the resume command.
func resumeCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:   "resume",
		Usage:  "Open the trip remembered on this device",
		Action: resumeAction(e),
	}
}

func resumeAction(e *env) cli.ActionFunc {
	return func(c *cli.Context) error {
		s, err := e.open(c.Context)
		if err != nil {
			return err
		}
		defer s.close()

		res, err := s.sync.Resume(c.Context)
		switch res.Outcome {
		case service.ResumeOpened:
			s.console.showTrip(res.Trip)
			return nil
		case service.ResumeFetchFailed:
			e.log.Debug("resume failed", "trip_id", res.TripID, "error", err)
			return cli.Exit("", 1)
		default:
			s.console.println(i18n.KeyNoActiveTrip)
			s.console.println(i18n.KeyStartNewTrip)
			return nil
		}
	}
}

// newCmd creates the new command: it drives the step form from flags.
func newCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "Create a trip",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "destination", Aliases: []string{"d"}, Usage: "Where you are going"},
			&cli.StringSliceFlag{Name: "date", Usage: "Calendar pick as YYYY-MM-DD; repeat for start and end"},
			&cli.StringSliceFlag{Name: "invite", Aliases: []string{"i"}, Usage: "Guest email; repeatable"},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Confirm the trip without asking"},
		},
		Action: func(c *cli.Context) error {
			s, err := e.open(c.Context)
			if err != nil {
				return err
			}
			defer s.close()
			return runNewTrip(c, e, s)
		},
	}
}

func runNewTrip(c *cli.Context, e *env, s *session) error {
	ctx := c.Context
	con := s.console

	var confirmer planner.Confirmer = con
	if c.Bool("yes") {
		confirmer = autoYes{}
	}
	form := planner.NewFormController(s.sync, confirmer, con,
		planner.WithClock(e.now),
		planner.WithLogger(e.log),
	)

	// TRIP_DETAILS
	if err := form.SetDestination(c.String("destination")); err != nil {
		return fail(con, err)
	}
	for _, raw := range c.StringSlice("date") {
		day, err := domain.ParseCalendarDate(raw)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		if _, err := form.PickDate(day); err != nil {
			return fail(con, err)
		}
	}
	if _, err := form.Advance(ctx); err != nil {
		return fail(con, err)
	}
	draft := form.Draft()
	fmt.Fprintln(e.out, planner.DisplayText(e.tag, draft.Destination, draft.Dates))

	// ADD_EMAIL
	for _, email := range c.StringSlice("invite") {
		if err := form.AddGuest(email); err != nil && !con.report(err) {
			return err
		}
	}
	if guests := form.Draft().InvitedEmails; len(guests) > 0 {
		fmt.Fprintln(e.out, planner.GuestSummary(e.tag, guests))
	} else {
		con.println(i18n.KeyGuestNone)
	}

	step, err := form.Advance(ctx)
	switch {
	case err == nil && step == planner.StepAddEmail:
		// declined
		return nil
	case errors.Is(err, domain.ErrStorage):
		id := form.TripID()
		con.println(i18n.KeySaveManual, id, id)
		return nil
	case errors.Is(err, domain.ErrRemoteService):
		return cli.Exit("", 1)
	case err != nil:
		return fail(con, err)
	}

	return showCreated(ctx, e, s)
}

// showCreated renders the trip the workflow opened after a create. The trip
// exists and its id is stored, so a failed fetch only prints the id and how to
// open it later.
func showCreated(ctx context.Context, e *env, s *session) error {
	id := s.console.openedTrip
	trip, err := s.sync.Trip(ctx, id)
	if err != nil {
		e.log.Warn("could not fetch created trip", "trip_id", id, "error", err)
		s.console.println(i18n.KeySaveManual, id, id)
		return nil
	}
	s.console.showTrip(trip)
	return nil
}

// showCmd creates the show command.
func showCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a trip (defaults to the current one)",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ics", Usage: "Also write the trip as an iCalendar file (- for stdout)"},
		},
		Action: func(c *cli.Context) error {
			s, err := e.open(c.Context)
			if err != nil {
				return err
			}
			defer s.close()

			id := c.Args().First()
			if id == "" {
				stored, ok, err := s.sync.CurrentTripID(c.Context)
				if err != nil {
					return err
				}
				if !ok {
					s.console.println(i18n.KeyNoActiveTrip)
					s.console.println(i18n.KeyStartNewTrip)
					return cli.Exit("", 1)
				}
				id = stored
			}
			return showByID(c.Context, s, id, c.String("ics"))
		},
	}
}

// showByID fetches and prints a trip. A trip that cannot be fetched sends the
// user back to the creation command.
func showByID(ctx context.Context, s *session, id, icsPath string) error {
	trip, err := s.sync.Trip(ctx, id)
	if err != nil {
		s.console.Notify(ctx, domain.Notice{
			Level: domain.NoticeError,
			Title: i18n.KeyTitleResume,
			Key:   i18n.KeyResumeFailed,
		})
		s.console.OpenCreateForm(ctx)
		return cli.Exit("", 1)
	}
	s.console.showTrip(trip)

	if icsPath == "" {
		return nil
	}
	return writeICS(s.console, trip, icsPath)
}

func writeICS(con *console, trip domain.Trip, path string) error {
	if path == "-" {
		return tripcal.Write(con.out, con.tag, trip, time.Now())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := tripcal.Write(f, con.tag, trip, time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// forgetCmd creates the forget command.
func forgetCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "forget",
		Usage: "Forget the current trip on this device (the trip itself is kept)",
		Action: func(c *cli.Context) error {
			s, err := e.open(c.Context)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.sync.Forget(c.Context); err != nil {
				return err
			}
			s.console.println(i18n.KeyForgotTrip)
			return nil
		},
	}
}

// fail renders err when the console knows how and turns it into exit code 1.
func fail(con *console, err error) error {
	if con.report(err) {
		return cli.Exit("", 1)
	}
	return err
}
