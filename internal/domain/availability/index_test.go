//go:build unit

package availability_test

import (
	"testing"
	"time"

	"grandehotel-core/internal/domain/availability"
	"grandehotel-core/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, checkIn, checkOut time.Time) stay.Range {
	t.Helper()
	r, err := stay.NewRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

func day(y int, m time.Month, d int) availability.DayKey {
	return availability.DayKey{Year: y, Month: m, Day: d}
}

func TestBuildIndex(t *testing.T) {
	t.Run("checkout day stays free", func(t *testing.T) {
		checkIn := time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)
		idx := availability.BuildIndex([]availability.Entry{
			{Stay: mustRange(t, checkIn, checkIn.AddDate(0, 0, 3)), Label: "Alice"},
		})

		for _, d := range []int{10, 11, 12} {
			key := day(2025, time.November, d)
			assert.True(t, idx.IsBooked(key), "day %d", d)
			assert.Equal(t, []string{"Alice"}, idx.Entries(key), "day %d", d)
		}
		assert.False(t, idx.IsBooked(day(2025, time.November, 13)))
		assert.Nil(t, idx.Entries(day(2025, time.November, 13)))
		assert.Equal(t, 3, idx.BookedDays())
	})

	t.Run("overlapping bookings accumulate labels", func(t *testing.T) {
		base := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
		idx := availability.BuildIndex([]availability.Entry{
			{Stay: mustRange(t, base, base.AddDate(0, 0, 2)), Label: "Alice"},
			{Stay: mustRange(t, base.AddDate(0, 0, 1), base.AddDate(0, 0, 3)), Label: "Bob"},
		})

		assert.Equal(t, []string{"Alice"}, idx.Entries(day(2025, time.November, 10)))
		assert.Equal(t, []string{"Alice", "Bob"}, idx.Entries(day(2025, time.November, 11)))
		assert.Equal(t, []string{"Bob"}, idx.Entries(day(2025, time.November, 12)))
	})

	t.Run("zero range contributes nothing", func(t *testing.T) {
		idx := availability.BuildIndex([]availability.Entry{
			{Stay: stay.Range{}, Label: "Mallory"},
		})
		assert.Equal(t, 0, idx.BookedDays())
	})

	t.Run("stay crossing a month boundary", func(t *testing.T) {
		checkIn := time.Date(2025, 11, 29, 12, 0, 0, 0, time.UTC)
		idx := availability.BuildIndex([]availability.Entry{
			{Stay: mustRange(t, checkIn, checkIn.AddDate(0, 0, 4)), Label: "Carol"},
		})

		assert.True(t, idx.IsBooked(day(2025, time.November, 29)))
		assert.True(t, idx.IsBooked(day(2025, time.November, 30)))
		assert.True(t, idx.IsBooked(day(2025, time.December, 1)))
		assert.True(t, idx.IsBooked(day(2025, time.December, 2)))
		assert.False(t, idx.IsBooked(day(2025, time.December, 3)))
	})
}

func TestCalendarHelpers(t *testing.T) {
	t.Run("days in month", func(t *testing.T) {
		cases := []struct {
			year  int
			month time.Month
			want  int
		}{
			{2025, time.November, 30},
			{2025, time.December, 31},
			{2025, time.February, 28},
			{2024, time.February, 29},
		}
		for _, tc := range cases {
			days := availability.DaysInMonth(tc.year, tc.month)
			require.Len(t, days, tc.want, "%d-%d", tc.year, tc.month)
			assert.Equal(t, day(tc.year, tc.month, 1), days[0])
			assert.Equal(t, day(tc.year, tc.month, tc.want), days[len(days)-1])
		}
	})

	t.Run("first weekday offset with Sunday as zero", func(t *testing.T) {
		// 2025-11-01 is a Saturday, 2025-06-01 a Sunday, 2025-12-01 a Monday.
		assert.Equal(t, 6, availability.FirstWeekdayOffset(2025, time.November))
		assert.Equal(t, 0, availability.FirstWeekdayOffset(2025, time.June))
		assert.Equal(t, 1, availability.FirstWeekdayOffset(2025, time.December))
	})
}
