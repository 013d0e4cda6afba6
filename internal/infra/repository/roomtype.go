package repository

import (
	"context"
	"time"

	"grandehotel-core/internal/domain/roomtype"
	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomTypeRepository struct {
	db db
}

func NewRoomTypeRepository(db db) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error) {
	const q = `
		SELECT id, hotel_id, name, unit_price_cents, total_units, created_at, updated_at
		FROM room_types
		WHERE id = @id`

	var (
		rtID           uuid.UUID
		hotelID        uuid.UUID
		name           string
		unitPriceCents int64
		totalUnits     int
		createdAt      time.Time
		updatedAt      time.Time
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).
		Scan(&rtID, &hotelID, &name, &unitPriceCents, &totalUnits, &createdAt, &updatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "room type not found", err)
		}
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find room type", err)
	}
	return roomtype.ReconstructRoomType(rtID, hotelID, name, unitPriceCents, totalUnits, createdAt, updatedAt), nil
}

// AvailableUnits subtracts units already committed to overlapping,
// non-rejected bookings from the room type's total. Overlap is checked on
// the half-open stay interval, so a check-out day does not block a check-in.
func (r *RoomTypeRepository) AvailableUnits(ctx context.Context, roomTypeID uuid.UUID, stayRange stay.Range) (int, error) {
	const q = `
		SELECT rt.total_units - COALESCE((
			SELECT SUM(br.quantity)
			FROM booking_rooms br
			JOIN bookings b ON b.id = br.booking_id
			WHERE br.room_type_id = rt.id
			  AND b.status <> 'rejected'
			  AND b.check_in < @check_out
			  AND b.check_out > @check_in
		), 0)
		FROM room_types rt
		WHERE rt.id = @room_type_id`

	var available int
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"room_type_id": roomTypeID,
		"check_in":     stayRange.CheckIn(),
		"check_out":    stayRange.CheckOut(),
	}).Scan(&available)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr(infra.KindNotFound, "room type not found", err)
		}
		return 0, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to compute available units", err)
	}
	if available < 0 {
		available = 0
	}
	return available, nil
}
