// Package localstore remembers, on this device, which trip the user is
// planning. It keeps a single row in a SQLite file under the planner home.
package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/migrations"
)

// FileName is the database file created under the base directory.
const FileName = "planner.db"

// Store is the SQLite-backed current-trip store. It satisfies
// service.TripStore. Every error it returns matches domain.ErrStorage.
type Store struct {
	db *sql.DB
}

// Open creates baseDir if needed, opens baseDir/planner.db and applies the
// local migrations. The caller must Close the store.
func Open(ctx context.Context, baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("localstore.Open: %w: create base directory: %w", domain.ErrStorage, err)
	}
	_ = os.Chmod(baseDir, 0o700)

	dbPath := filepath.Join(baseDir, FileName)
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("localstore.Open: %w: open database: %w", domain.ErrStorage, err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Local)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore.Open: %w: create goose provider: %w", domain.ErrStorage, err)
	}
	if _, err := provider.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore.Open: %w: run migrations: %w", domain.ErrStorage, err)
	}

	_ = os.Chmod(dbPath, 0o600)
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CurrentTripID returns the remembered trip id and whether one is stored.
func (s *Store) CurrentTripID(ctx context.Context) (string, bool, error) {
	const q = `SELECT trip_id FROM current_trip WHERE slot = 1`

	var id string
	err := s.db.QueryRowContext(ctx, q).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("localstore.CurrentTripID: %w: %w", domain.ErrStorage, err)
	}
	return id, true, nil
}

// SetCurrentTripID remembers id, replacing any earlier one.
func (s *Store) SetCurrentTripID(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("localstore.SetCurrentTripID: %w: empty trip id", domain.ErrStorage)
	}
	const q = `
		INSERT INTO current_trip (slot, trip_id) VALUES (1, ?)
		ON CONFLICT (slot) DO UPDATE
		SET trip_id = excluded.trip_id,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`

	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("localstore.SetCurrentTripID: %w: %w", domain.ErrStorage, err)
	}
	return nil
}

// ClearCurrentTripID forgets the remembered id. Clearing an empty store is not an error.
func (s *Store) ClearCurrentTripID(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM current_trip`); err != nil {
		return fmt.Errorf("localstore.ClearCurrentTripID: %w: %w", domain.ErrStorage, err)
	}
	return nil
}
