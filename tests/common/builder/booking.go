//go:build unit || e2e

package builder

import (
	"time"

	"grandehotel-core/internal/domain/booking"
	"grandehotel-core/internal/domain/stay"
	"grandehotel-core/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder assembles booking entities and views with sensible
// defaults so tests only state what they care about.
type BookingBuilder struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	guestID    uuid.UUID
	guestName  string
	checkIn    time.Time
	checkOut   time.Time
	rooms      []booking.BookedRoom
	totalCents int64
	status     booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2025, 11, 10, 15, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		id:        uuid.New(),
		hotelID:   uuid.New(),
		guestID:   uuid.New(),
		guestName: "Alice Example",
		checkIn:   checkIn,
		checkOut:  checkIn.AddDate(0, 0, 3),
		rooms: []booking.BookedRoom{
			{
				RoomTypeID:     uuid.New(),
				Quantity:       2,
				UnitPriceCents: 15000,
				Adults:         2,
				Children:       1,
				Infants:        0,
			},
		},
		totalCents: 90000,
		status:     booking.StatusPending,
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.id = id
	return b
}

func (b *BookingBuilder) WithHotelID(id uuid.UUID) *BookingBuilder {
	b.hotelID = id
	return b
}

func (b *BookingBuilder) WithGuestName(name string) *BookingBuilder {
	b.guestName = name
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.checkIn = checkIn
	b.checkOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.status = status
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	r, err := stay.NewRange(b.checkIn, b.checkOut)
	if err != nil {
		return nil, err
	}
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	return booking.ReconstructBooking(
		b.id, b.hotelID, b.guestID, b.guestName,
		r, b.rooms, b.totalCents, b.status,
		now, now,
	), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	rooms := make([]queries.BookingRoomView, 0, len(b.rooms))
	for _, room := range b.rooms {
		rooms = append(rooms, queries.BookingRoomView{
			RoomTypeID:     room.RoomTypeID,
			RoomTypeName:   "Deluxe Twin",
			Quantity:       room.Quantity,
			UnitPriceCents: room.UnitPriceCents,
			Adults:         room.Adults,
			Children:       room.Children,
			Infants:        room.Infants,
			LineTotalCents: room.UnitPriceCents * int64(room.Quantity) * 3,
		})
	}
	now := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:         b.id,
		HotelID:    b.hotelID,
		GuestID:    b.guestID,
		GuestName:  b.guestName,
		CheckIn:    b.checkIn,
		CheckOut:   b.checkOut,
		Nights:     3,
		Rooms:      rooms,
		TotalCents: b.totalCents,
		Status:     b.status.String(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
