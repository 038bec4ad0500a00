package localstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/localstore"
	"github.com/pkordes/tripplanner/internal/service"
)

var _ service.TripStore = (*localstore.Store)(nil)

func openStore(t *testing.T, dir string) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_EmptyByDefault(t *testing.T) {
	s := openStore(t, t.TempDir())

	id, ok, err := s.CurrentTripID(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestStore_SetOverwritesAndClear(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, t.TempDir())

	require.NoError(t, s.SetCurrentTripID(ctx, "trip-1"))
	require.NoError(t, s.SetCurrentTripID(ctx, "trip-2"))

	id, ok, err := s.CurrentTripID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "trip-2", id)

	require.NoError(t, s.ClearCurrentTripID(ctx))
	require.NoError(t, s.ClearCurrentTripID(ctx), "clearing twice is fine")

	_, ok, err = s.CurrentTripID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := localstore.Open(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, first.SetCurrentTripID(ctx, "trip-7"))
	require.NoError(t, first.Close())

	second := openStore(t, dir)
	id, ok, err := second.CurrentTripID(ctx)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "trip-7", id)
}

func TestStore_CreatesPrivateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".planner")
	openStore(t, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	assert.FileExists(t, filepath.Join(dir, localstore.FileName))
}

func TestStore_RejectsEmptyID(t *testing.T) {
	s := openStore(t, t.TempDir())

	assert.ErrorIs(t, s.SetCurrentTripID(context.Background(), ""), domain.ErrStorage)
}

func TestOpen_BaseDirIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := localstore.Open(context.Background(), file)

	assert.ErrorIs(t, err, domain.ErrStorage)
}
