package commands

import (
	"context"
	"time"

	"grandehotel-core/internal/domain/booking"
	"grandehotel-core/internal/domain/roomtype"
	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, tx pgx.Tx, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to booking.Status) error
	AppendStatusHistory(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to booking.Status, changedBy uuid.UUID) error
}

type RoomTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error)
	// AvailableUnits derives how many units of the room type remain free for
	// every night of the stay, counting units held by overlapping bookings
	// that have not been rejected.
	AvailableUnits(ctx context.Context, roomTypeID uuid.UUID, stayRange stay.Range) (int, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
