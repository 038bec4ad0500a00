package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/repo"
	"github.com/pkordes/tripplanner/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// TripRepo backed by that transaction, plus the transaction itself for direct
// assertions. The transaction is rolled back when the test finishes.
func newTestRepo(t *testing.T) (repo.TripRepo, pgx.Tx) {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx), tx
}

// tripFixture returns a domain.NewTrip with sensible defaults for use in tests.
func tripFixture() domain.NewTrip {
	return domain.NewTrip{
		Destination:    "São Paulo",
		StartsAt:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EmailsToInvite: []string{"ana@trip.com", "bruno@trip.com"},
	}
}

func countInvites(t *testing.T, tx pgx.Tx, tripID string) int {
	t.Helper()
	var n int
	err := tx.QueryRow(context.Background(),
		`SELECT count(*) FROM trip_invites WHERE trip_id = $1`, tripID).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestTripRepo_Create(t *testing.T) {
	r, tx := newTestRepo(t)
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	_, err = uuid.Parse(got.ID)
	assert.NoError(t, err, "ID should be a DB-generated UUID")
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartsAt.Equal(input.StartsAt), "StartsAt mismatch")
	assert.True(t, got.EndsAt.Equal(input.EndsAt), "EndsAt mismatch")
	assert.False(t, got.IsConfirmed)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.Equal(t, 2, countInvites(t, tx, got.ID))
}

func TestTripRepo_Create_NoInvites(t *testing.T) {
	r, tx := newTestRepo(t)

	input := tripFixture()
	input.EmailsToInvite = nil
	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 0, countInvites(t, tx, got.ID))
}

func TestTripRepo_GetByID(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, uuid.MustParse(created.ID))

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "São Paulo", got.Destination)
	assert.Equal(t, time.UTC, got.StartsAt.Location())
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r, _ := newTestRepo(t)

	_, err := r.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
