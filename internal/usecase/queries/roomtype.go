package queries

import (
	"context"
	"time"

	"grandehotel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomTypeQuery = errs.New("room type query failed")

// RoomTypeReadStore returns catalog rows with availability already derived
// for the requested stay window (total units minus units held by
// overlapping, non-rejected bookings).
type RoomTypeReadStore interface {
	FindByHotelForStay(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*RoomTypeView, error)
}

type RoomTypeQueries interface {
	ListForStay(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	store RoomTypeReadStore
}

func NewRoomTypeQueries(store RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{store: store}
}

func (q *roomTypeQueriesImpl) ListForStay(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*RoomTypeView, error) {
	rows, err := q.store.FindByHotelForStay(ctx, hotelID, checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomTypeQuery)
	}
	return rows, nil
}
