// Package repository holds the write-side persistence for bookings and the
// lookups command flows need. Only SQL and type mapping live here.
package repository

import (
	"context"
	"time"

	"grandehotel-core/internal/domain/booking"
	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx, so tests can substitute a transaction for rollback isolation.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingRepository struct {
	db db
}

func NewBookingRepository(db db) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const q = `
		SELECT id, hotel_id, guest_id, guest_name, check_in, check_out,
		       total_cents, status, created_at, updated_at
		FROM bookings
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})

	var (
		bookingID, hotelID, guestID uuid.UUID
		guestName, status           string
		checkIn, checkOut           time.Time
		totalCents                  int64
		createdAt, updatedAt        time.Time
	)
	if err := row.Scan(&bookingID, &hotelID, &guestID, &guestName, &checkIn, &checkOut,
		&totalCents, &status, &createdAt, &updatedAt); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to find booking", err)
	}

	rooms, err := r.findRooms(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	stayRange, err := stay.NewRange(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored booking has invalid stay range", err)
	}

	bookingStatus, err := booking.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored booking has invalid status", err)
	}

	return booking.ReconstructBooking(
		bookingID, hotelID, guestID, guestName,
		stayRange, rooms, totalCents, bookingStatus,
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) findRooms(ctx context.Context, bookingID uuid.UUID) ([]booking.BookedRoom, error) {
	const q = `
		SELECT room_type_id, quantity, unit_price_cents, adults, children, infants
		FROM booking_rooms
		WHERE booking_id = @booking_id
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"booking_id": bookingID})
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to load booking rooms", err)
	}
	defer rows.Close()

	var out []booking.BookedRoom
	for rows.Next() {
		var room booking.BookedRoom
		if err := rows.Scan(&room.RoomTypeID, &room.Quantity, &room.UnitPriceCents,
			&room.Adults, &room.Children, &room.Infants); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking room", err)
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to iterate booking rooms", err)
	}
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error) {
	const insertBooking = `
		INSERT INTO bookings (id, hotel_id, guest_id, guest_name, check_in, check_out, total_cents, status)
		VALUES (@id, @hotel_id, @guest_id, @guest_name, @check_in, @check_out, @total_cents, @status)
		RETURNING id`

	var bookingID uuid.UUID
	err := tx.QueryRow(ctx, insertBooking, pgx.NamedArgs{
		"id":          b.ID(),
		"hotel_id":    b.HotelID(),
		"guest_id":    b.GuestID(),
		"guest_name":  b.GuestName(),
		"check_in":    b.StayRange().CheckIn(),
		"check_out":   b.StayRange().CheckOut(),
		"total_cents": b.TotalCents(),
		"status":      b.Status().String(),
	}).Scan(&bookingID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to insert booking", err)
	}

	const insertRoom = `
		INSERT INTO booking_rooms (booking_id, room_type_id, quantity, unit_price_cents, adults, children, infants, position)
		VALUES (@booking_id, @room_type_id, @quantity, @unit_price_cents, @adults, @children, @infants, @position)`

	for i, room := range b.Rooms() {
		if _, err := tx.Exec(ctx, insertRoom, pgx.NamedArgs{
			"booking_id":       bookingID,
			"room_type_id":     room.RoomTypeID,
			"quantity":         room.Quantity,
			"unit_price_cents": room.UnitPriceCents,
			"adults":           room.Adults,
			"children":         room.Children,
			"infants":          room.Infants,
			"position":         i,
		}); err != nil {
			return uuid.Nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to insert booking room", err)
		}
	}

	return bookingID, nil
}

// UpdateStatus is guarded on the status the transition decision was made
// against; zero affected rows means a concurrent change won.
func (r *BookingRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to booking.Status) error {
	const q = `
		UPDATE bookings
		SET status = @to, updated_at = now()
		WHERE id = @id AND status = @from`

	tag, err := tx.Exec(ctx, q, pgx.NamedArgs{"id": id, "from": from.String(), "to": to.String()})
	if err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindStaleStatus, "booking status changed concurrently", nil)
	}
	return nil
}

func (r *BookingRepository) AppendStatusHistory(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to booking.Status, changedBy uuid.UUID) error {
	const q = `
		INSERT INTO booking_status_history (booking_id, from_status, to_status, changed_by)
		VALUES (@booking_id, @from_status, @to_status, @changed_by)`

	if _, err := tx.Exec(ctx, q, pgx.NamedArgs{
		"booking_id":  id,
		"from_status": from.String(),
		"to_status":   to.String(),
		"changed_by":  changedBy,
	}); err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to append status history", err)
	}
	return nil
}
