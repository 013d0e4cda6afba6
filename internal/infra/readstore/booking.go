// Package readstore holds the query-side projections. Each store returns
// view structs directly; the aggregates in internal/domain stay on the
// write side.
package readstore

import (
	"context"

	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingReadStore struct {
	db db
}

func NewBookingReadStore(db db) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT id, hotel_id, guest_id, guest_name, check_in, check_out,
		       total_cents, status, created_at, updated_at
		FROM bookings
		WHERE id = @id`

	var view queries.BookingView
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&view.ID, &view.HotelID, &view.GuestID, &view.GuestName,
		&view.CheckIn, &view.CheckOut, &view.TotalCents, &view.Status,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find booking", err)
	}

	if r, rangeErr := stay.NewRange(view.CheckIn, view.CheckOut); rangeErr == nil {
		view.Nights = r.Nights()
	} else {
		view.Nights = 1
	}

	rooms, err := s.findRooms(ctx, id, view.Nights)
	if err != nil {
		return nil, err
	}
	view.Rooms = rooms

	return &view, nil
}

func (s *BookingReadStore) findRooms(ctx context.Context, bookingID uuid.UUID, nights int) ([]queries.BookingRoomView, error) {
	const q = `
		SELECT br.room_type_id, rt.name, br.quantity, br.unit_price_cents,
		       br.adults, br.children, br.infants
		FROM booking_rooms br
		JOIN room_types rt ON rt.id = br.room_type_id
		WHERE br.booking_id = @booking_id
		ORDER BY br.position`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{"booking_id": bookingID})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to load booking rooms", err)
	}
	defer rows.Close()

	out := make([]queries.BookingRoomView, 0, 4)
	for rows.Next() {
		var room queries.BookingRoomView
		if err := rows.Scan(&room.RoomTypeID, &room.RoomTypeName, &room.Quantity,
			&room.UnitPriceCents, &room.Adults, &room.Children, &room.Infants); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking room", err)
		}
		room.LineTotalCents = room.UnitPriceCents * int64(room.Quantity) * int64(nights)
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate booking rooms", err)
	}
	return out, nil
}

const bookingListColumns = `
	SELECT id, hotel_id, guest_name, check_in, check_out, total_cents, status, created_at
	FROM bookings`

func (s *BookingReadStore) FindByHotelID(ctx context.Context, hotelID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const q = bookingListColumns + `
		WHERE hotel_id = @hotel_id
		ORDER BY created_at DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{"hotel_id": hotelID, "limit": limit})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list bookings by hotel", err)
	}
	return scanListItems(rows)
}

func (s *BookingReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const q = bookingListColumns + `
		WHERE guest_id = @guest_id
		ORDER BY created_at DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{"guest_id": guestID, "limit": limit})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to list bookings by guest", err)
	}
	return scanListItems(rows)
}

func scanListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	out := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(&item.ID, &item.HotelID, &item.GuestName,
			&item.CheckIn, &item.CheckOut, &item.TotalCents, &item.Status, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking list item", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate booking list", err)
	}
	return out, nil
}
