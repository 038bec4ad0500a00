package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripplanner/internal/domain"
	"github.com/pkordes/tripplanner/internal/planner"
)

func TestAddGuest_AppendsNormalized(t *testing.T) {
	got, err := planner.AddGuest([]string{"ana@trip.com"}, " Bruno@Trip.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"ana@trip.com", "bruno@trip.com"}, got)
}

func TestAddGuest_DoesNotModifyInput(t *testing.T) {
	in := make([]string, 1, 4)
	in[0] = "ana@trip.com"

	got, err := planner.AddGuest(in, "bruno@trip.com")

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []string{"ana@trip.com"}, in)
	assert.Equal(t, "", in[:2][1], "backing array must not be shared")
}

func TestAddGuest_InvalidFormat(t *testing.T) {
	in := []string{"ana@trip.com"}

	got, err := planner.AddGuest(in, "not-an-email")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.FieldEmail, verr.Field)
	assert.Equal(t, domain.ReasonInvalidFormat, verr.Reason)
	assert.Equal(t, in, got)
}

func TestAddGuest_IdempotentIgnoringCase(t *testing.T) {
	once, err := planner.AddGuest(nil, "ana@trip.com")
	require.NoError(t, err)

	twice, err := planner.AddGuest(once, "ANA@Trip.com")

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{"ana@trip.com"}, twice)
}

func TestRemoveGuest_RemovesIgnoringCase(t *testing.T) {
	got := planner.RemoveGuest([]string{"ana@trip.com", "bruno@trip.com", "caio@trip.com"}, "BRUNO@trip.com")

	assert.Equal(t, []string{"ana@trip.com", "caio@trip.com"}, got)
}

func TestRemoveGuest_NonMemberIsNoop(t *testing.T) {
	in := []string{"ana@trip.com", "bruno@trip.com"}

	got := planner.RemoveGuest(in, "zed@trip.com")

	assert.Equal(t, in, got)
}

func TestGuests_AddThenRemoveRestoresOriginal(t *testing.T) {
	original := []string{"ana@trip.com", "bruno@trip.com", "caio@trip.com"}

	added, err := planner.AddGuest(original, "dora@trip.com")
	require.NoError(t, err)
	restored := planner.RemoveGuest(added, "dora@trip.com")

	assert.Equal(t, original, restored)
}

func TestGuests_RemoveThenAddRestoresMembership(t *testing.T) {
	original := []string{"ana@trip.com", "bruno@trip.com", "caio@trip.com"}

	removed := planner.RemoveGuest(original, "bruno@trip.com")
	require.False(t, planner.HasGuest(removed, "bruno@trip.com"))

	readded, err := planner.AddGuest(removed, "bruno@trip.com")

	require.NoError(t, err)
	assert.True(t, planner.HasGuest(readded, "Bruno@trip.com"))
	// Untouched entries keep their relative order; the re-added one goes last.
	assert.Equal(t, []string{"ana@trip.com", "caio@trip.com", "bruno@trip.com"}, readded)
}
