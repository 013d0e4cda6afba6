package booking

import (
	"time"

	"grandehotel-core/internal/domain/stay"

	"github.com/google/uuid"
)

// BookedRoom is one room-type line of a persisted booking, frozen at the
// prices and occupancy captured when the draft was finalized.
type BookedRoom struct {
	RoomTypeID     uuid.UUID
	Quantity       int
	UnitPriceCents int64
	Adults         int
	Children       int
	Infants        int
}

type Booking struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	guestID    uuid.UUID
	guestName  string
	stayRange  stay.Range
	rooms      []BookedRoom
	totalCents int64
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a pending booking from a finalized draft's data.
func NewBooking(hotelID, guestID uuid.UUID, guestName string, stayRange stay.Range, rooms []BookedRoom, totalCents int64) *Booking {
	return &Booking{
		id:         uuid.New(),
		hotelID:    hotelID,
		guestID:    guestID,
		guestName:  guestName,
		stayRange:  stayRange,
		rooms:      rooms,
		totalCents: totalCents,
		status:     StatusPending,
	}
}

func ReconstructBooking(
	id, hotelID, guestID uuid.UUID,
	guestName string,
	stayRange stay.Range,
	rooms []BookedRoom,
	totalCents int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		hotelID:    hotelID,
		guestID:    guestID,
		guestName:  guestName,
		stayRange:  stayRange,
		rooms:      rooms,
		totalCents: totalCents,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ChangeStatus runs the lifecycle table against the entity's current status
// and applies the result on success.
func (b *Booking) ChangeStatus(requested Status) error {
	next, err := AttemptTransition(b.status, requested)
	if err != nil {
		return err
	}
	b.status = next
	return nil
}

func (b *Booking) AvailableActions() []Status {
	return AvailableActions(b.status)
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) HotelID() uuid.UUID    { return b.hotelID }
func (b *Booking) GuestID() uuid.UUID    { return b.guestID }
func (b *Booking) GuestName() string     { return b.guestName }
func (b *Booking) StayRange() stay.Range { return b.stayRange }
func (b *Booking) Rooms() []BookedRoom   { return b.rooms }
func (b *Booking) TotalCents() int64     { return b.totalCents }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
