//go:build unit

package restriction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestriction(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		r, err := NewRestriction(uuid.New(), "no-show three times", now, now.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Equal(t, "no-show three times", r.Reason())
	})

	t.Run("reason is trimmed", func(t *testing.T) {
		r, err := NewRestriction(uuid.New(), "  late cancellation  ", now, now.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, "late cancellation", r.Reason())
	})

	t.Run("empty reason", func(t *testing.T) {
		_, err := NewRestriction(uuid.New(), "   ", now, now.Add(time.Hour))
		assert.ErrorIs(t, err, ErrEmptyReason)
	})

	t.Run("window ends before it starts", func(t *testing.T) {
		_, err := NewRestriction(uuid.New(), "reason", now, now.Add(-time.Hour))
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("zero-length window", func(t *testing.T) {
		_, err := NewRestriction(uuid.New(), "reason", now, now)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})
}

func TestInForceAt(t *testing.T) {
	start := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	r, err := NewRestriction(uuid.New(), "disciplinary", start, end)
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", start.Add(-time.Second), false},
		{"start is inclusive", start, true},
		{"inside window", start.AddDate(0, 0, 3), true},
		{"end is exclusive", end, false},
		{"after window", end.Add(time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.InForceAt(tt.at))
		})
	}
}
