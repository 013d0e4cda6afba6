//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"grandehotel-core/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStayStore struct {
	stays []*queries.BookingStay
	err   error
}

func (s *stubStayStore) FindStaysOverlapping(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*queries.BookingStay, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stays, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonthCalendar(t *testing.T) {
	hotelID := uuid.New()

	t.Run("month grid with booked days and labels", func(t *testing.T) {
		checkIn := time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)
		store := &stubStayStore{stays: []*queries.BookingStay{
			{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 3), GuestName: "Alice"},
		}}
		q := queries.NewAvailabilityQueries(store, discardLogger())

		view, err := q.MonthCalendar(context.Background(), hotelID, 2025, 11)
		require.NoError(t, err)

		assert.Equal(t, 2025, view.Year)
		assert.Equal(t, 11, view.Month)
		assert.Equal(t, 6, view.WeekdayOffset) // November 2025 starts on a Saturday

		expected := make([]queries.CalendarDay, 30)
		for i := range expected {
			expected[i] = queries.CalendarDay{Day: i + 1}
		}
		for _, dayNum := range []int{10, 11, 12} {
			expected[dayNum-1].Booked = true
			expected[dayNum-1].Guests = []string{"Alice"}
		}
		// Checkout day 13 stays free.
		if diff := cmp.Diff(expected, view.Days, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("calendar days mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed stays are skipped, the rest render", func(t *testing.T) {
		checkIn := time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)
		store := &stubStayStore{stays: []*queries.BookingStay{
			{CheckIn: checkIn, CheckOut: checkIn, GuestName: "Mallory"},
			{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, -2), GuestName: "Trudy"},
			{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 1), GuestName: "Bob"},
		}}
		q := queries.NewAvailabilityQueries(store, discardLogger())

		view, err := q.MonthCalendar(context.Background(), hotelID, 2025, 11)
		require.NoError(t, err)

		booked := 0
		for _, d := range view.Days {
			if d.Booked {
				booked++
				assert.Equal(t, []string{"Bob"}, d.Guests)
			}
		}
		assert.Equal(t, 1, booked)
	})

	t.Run("empty month", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&stubStayStore{}, discardLogger())

		view, err := q.MonthCalendar(context.Background(), hotelID, 2026, 2)
		require.NoError(t, err)
		require.Len(t, view.Days, 28)
		for _, d := range view.Days {
			assert.False(t, d.Booked)
			assert.Empty(t, d.Guests)
		}
	})

	t.Run("invalid month arguments", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(&stubStayStore{}, discardLogger())

		for _, month := range []int{0, 13, -1} {
			_, err := q.MonthCalendar(context.Background(), hotelID, 2025, month)
			assert.ErrorIs(t, err, queries.ErrInvalidMonth, "month %d", month)
		}
		_, err := q.MonthCalendar(context.Background(), hotelID, 0, 5)
		assert.ErrorIs(t, err, queries.ErrInvalidMonth)
	})
}
