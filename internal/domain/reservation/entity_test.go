//go:build unit

package reservation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveReservation(t *testing.T) *Reservation {
	t.Helper()
	slot, err := NewSlot(testNow.AddDate(0, 0, 1), 12*60, 30, testNow)
	require.NoError(t, err)
	return NewReservation(uuid.New(), uuid.New(), slot)
}

func TestReservationCancel(t *testing.T) {
	t.Run("active can be cancelled", func(t *testing.T) {
		r := newActiveReservation(t)
		require.NoError(t, r.Cancel())
		assert.Equal(t, StatusCancelled, r.Status())
	})

	t.Run("cancelled stays cancelled", func(t *testing.T) {
		r := newActiveReservation(t)
		require.NoError(t, r.Cancel())
		assert.ErrorIs(t, r.Cancel(), ErrNotCancellable)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		r := newActiveReservation(t)
		require.NoError(t, r.Complete(r.Slot().EndsAt()))
		assert.ErrorIs(t, r.Cancel(), ErrNotCancellable)
	})
}

func TestReservationComplete(t *testing.T) {
	t.Run("active completes once slot has ended", func(t *testing.T) {
		r := newActiveReservation(t)
		require.NoError(t, r.Complete(r.Slot().EndsAt().Add(time.Minute)))
		assert.Equal(t, StatusCompleted, r.Status())
	})

	t.Run("slot end is inclusive", func(t *testing.T) {
		r := newActiveReservation(t)
		assert.NoError(t, r.Complete(r.Slot().EndsAt()))
	})

	t.Run("slot still running", func(t *testing.T) {
		r := newActiveReservation(t)
		err := r.Complete(r.Slot().StartsAt().Add(10 * time.Minute))
		assert.ErrorIs(t, err, ErrSlotNotOver)
		assert.Equal(t, StatusActive, r.Status())
	})

	t.Run("cancelled cannot complete", func(t *testing.T) {
		r := newActiveReservation(t)
		require.NoError(t, r.Cancel())
		assert.ErrorIs(t, r.Complete(r.Slot().EndsAt()), ErrNotCompletable)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusActive.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestReservationIsOwnedBy(t *testing.T) {
	r := newActiveReservation(t)
	assert.True(t, r.IsOwnedBy(r.StudentID()))
	assert.False(t, r.IsOwnedBy(uuid.New()))
}
