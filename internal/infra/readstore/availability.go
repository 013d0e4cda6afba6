package readstore

import (
	"context"
	"time"

	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingStayReadStore struct {
	db db
}

func NewBookingStayReadStore(db db) *BookingStayReadStore {
	return &BookingStayReadStore{db: db}
}

// FindStaysOverlapping returns every non-rejected stay touching the
// [from, to) window. Overlap uses the half-open comparison so a stay that
// checks out on the window's first day is not returned.
func (s *BookingStayReadStore) FindStaysOverlapping(ctx context.Context, hotelID uuid.UUID, from, to time.Time) ([]*queries.BookingStay, error) {
	const q = `
		SELECT check_in, check_out, guest_name
		FROM bookings
		WHERE hotel_id = @hotel_id
		  AND status <> 'rejected'
		  AND check_in < @to
		  AND check_out > @from
		ORDER BY check_in`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{"hotel_id": hotelID, "from": from, "to": to})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list overlapping stays", err)
	}
	defer rows.Close()

	out := make([]*queries.BookingStay, 0)
	for rows.Next() {
		var stay queries.BookingStay
		if err := rows.Scan(&stay.CheckIn, &stay.CheckOut, &stay.GuestName); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan stay", err)
		}
		out = append(out, &stay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate stays", err)
	}
	return out, nil
}
