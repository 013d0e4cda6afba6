package readstore

import (
	"context"
	"time"

	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomTypeReadStore struct {
	db db
}

func NewRoomTypeReadStore(db db) *RoomTypeReadStore {
	return &RoomTypeReadStore{db: db}
}

func (s *RoomTypeReadStore) FindByHotelForStay(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*queries.RoomTypeView, error) {
	const q = `
		SELECT rt.id, rt.hotel_id, rt.name, rt.unit_price_cents, rt.total_units,
		       rt.total_units - COALESCE((
		           SELECT SUM(br.quantity)
		           FROM booking_rooms br
		           JOIN bookings b ON b.id = br.booking_id
		           WHERE br.room_type_id = rt.id
		             AND b.status <> 'rejected'
		             AND b.check_in < @check_out
		             AND b.check_out > @check_in
		       ), 0) AS available_units
		FROM room_types rt
		WHERE rt.hotel_id = @hotel_id
		ORDER BY rt.name`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{
		"hotel_id":  hotelID,
		"check_in":  checkIn,
		"check_out": checkOut,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list room types", err)
	}
	defer rows.Close()

	out := make([]*queries.RoomTypeView, 0)
	for rows.Next() {
		var view queries.RoomTypeView
		if err := rows.Scan(&view.ID, &view.HotelID, &view.Name,
			&view.UnitPriceCents, &view.TotalUnits, &view.AvailableUnits); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room type", err)
		}
		if view.AvailableUnits < 0 {
			view.AvailableUnits = 0
		}
		out = append(out, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate room types", err)
	}
	return out, nil
}
