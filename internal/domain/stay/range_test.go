//go:build unit

package stay_test

import (
	"testing"
	"time"

	"grandehotel-core/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	base := time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)

	t.Run("valid range", func(t *testing.T) {
		r, err := stay.NewRange(base, base.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.Equal(t, base, r.CheckIn())
		assert.False(t, r.IsZero())
	})

	t.Run("checkout equal to checkin", func(t *testing.T) {
		_, err := stay.NewRange(base, base)
		assert.ErrorIs(t, err, stay.ErrInvalidRange)
	})

	t.Run("checkout before checkin", func(t *testing.T) {
		_, err := stay.NewRange(base, base.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, stay.ErrInvalidRange)
	})
}

func TestNights(t *testing.T) {
	base := time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkOut time.Time
		want     int
	}{
		{
			name:     "exactly three days",
			checkOut: base.AddDate(0, 0, 3),
			want:     3,
		},
		{
			name:     "partial day rounds up",
			checkOut: base.AddDate(0, 0, 2).Add(6 * time.Hour),
			want:     3,
		},
		{
			name:     "sub-day stay floors at one night",
			checkOut: base.Add(5 * time.Hour),
			want:     1,
		},
		{
			name:     "one full day",
			checkOut: base.AddDate(0, 0, 1),
			want:     1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := stay.NewRange(base, tc.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.Nights())
		})
	}
}
