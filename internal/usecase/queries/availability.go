package queries

import (
	"context"
	"log/slog"
	"time"

	"grandehotel-core/internal/domain/availability"
	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidMonth      = errs.New("invalid calendar month")
	ErrAvailabilityQuery = errs.New("availability query failed")
)

// BookingStayReadStore lists the stays overlapping a window, regardless of
// how far the booking has moved through its lifecycle (rejected bookings are
// excluded at the SQL level).
type BookingStayReadStore interface {
	FindStaysOverlapping(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*BookingStay, error)
}

type AvailabilityQueries interface {
	MonthCalendar(ctx context.Context, hotelID uuid.UUID, year, month int) (*CalendarView, error)
}

type availabilityQueriesImpl struct {
	store  BookingStayReadStore
	logger *slog.Logger
}

func NewAvailabilityQueries(store BookingStayReadStore, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, logger: logger}
}

func (q *availabilityQueriesImpl) MonthCalendar(ctx context.Context, hotelID uuid.UUID, year, month int) (*CalendarView, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidMonth
	}
	m := time.Month(month)
	from := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	stays, err := q.store.FindStaysOverlapping(ctx, hotelID, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityQuery)
	}

	entries := make([]availability.Entry, 0, len(stays))
	skipped := 0
	for _, s := range stays {
		r, rangeErr := stay.NewRange(s.CheckIn, s.CheckOut)
		if rangeErr != nil {
			// Malformed upstream record: keep rendering, surface the
			// data-quality signal in the logs.
			skipped++
			continue
		}
		entries = append(entries, availability.Entry{Stay: r, Label: s.GuestName})
	}
	if skipped > 0 {
		q.logger.Warn("skipped bookings with malformed stay ranges",
			"hotel_id", hotelID, "year", year, "month", month, "skipped", skipped)
	}

	idx := availability.BuildIndex(entries)

	days := availability.DaysInMonth(year, m)
	view := &CalendarView{
		Year:          year,
		Month:         month,
		WeekdayOffset: availability.FirstWeekdayOffset(year, m),
		Days:          make([]CalendarDay, 0, len(days)),
	}
	for _, key := range days {
		view.Days = append(view.Days, CalendarDay{
			Day:    key.Day,
			Booked: idx.IsBooked(key),
			Guests: idx.Entries(key),
		})
	}
	return view, nil
}
