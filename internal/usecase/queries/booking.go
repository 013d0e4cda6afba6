package queries

import (
	"context"

	"grandehotel-core/internal/domain/booking"
	"grandehotel-core/internal/infra"
	"grandehotel-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingQuery    = errs.New("booking query failed")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, limit int) ([]*BookingListItem, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	decorateActions(view)
	return view, nil
}

func (q *bookingQueriesImpl) ListByHotel(ctx context.Context, hotelID uuid.UUID, limit int) ([]*BookingListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := q.store.FindByHotelID(ctx, hotelID, int32(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	return rows, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := q.store.FindByGuestID(ctx, guestID, int32(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrBookingQuery)
	}
	return rows, nil
}

// decorateActions fills the view's Actions from the lifecycle table so the
// UI renders exactly the transitions a record may take next.
func decorateActions(view *BookingView) {
	status, err := booking.NewStatus(view.Status)
	if err != nil {
		view.Actions = []string{}
		return
	}
	next := booking.AvailableActions(status)
	actions := make([]string, len(next))
	for i, s := range next {
		actions[i] = s.String()
	}
	view.Actions = actions
}
