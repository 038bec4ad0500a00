// Package repo contains all database access logic for the trip service.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/tripplanner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup. Begin on a pgx.Tx opens a
// savepoint, so Create stays atomic in both cases.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and its invites in one transaction and returns
	// the persisted record (with DB-generated id and created_at populated).
	Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts the trip row, bulk-copies its invites, and returns the trip.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.NewTrip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING id, destination, starts_at, ends_at, is_confirmed, created_at`

	args := pgx.NamedArgs{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	}

	var result domain.Trip
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var (
			id  pgtype.UUID
			err error
		)
		result, id, err = scanTrip(tx.QueryRow(ctx, q, args))
		if err != nil {
			return err
		}
		if len(trip.EmailsToInvite) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(trip.EmailsToInvite))
		for _, email := range trip.EmailsToInvite {
			rows = append(rows, []any{id, email})
		}
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"trip_invites"},
			[]string{"trip_id", "email"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf("copy invites: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, destination, starts_at, ends_at, is_confirmed, created_at
		FROM trips
		WHERE id = @id`

	result, _, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip and also returns the
// raw primary key for follow-up statements.
func scanTrip(s scanner) (domain.Trip, pgtype.UUID, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, id, domain.ErrNotFound
		}
		return domain.Trip{}, id, err
	}

	t.ID = uuid.UUID(id.Bytes).String()
	t.StartsAt = t.StartsAt.UTC()
	t.EndsAt = t.EndsAt.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
	return t, id, nil
}
