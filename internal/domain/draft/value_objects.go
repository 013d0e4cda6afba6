package draft

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice    = errors.New("unit price cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrQuantityExceeded = errors.New("quantity exceeds available units")
	ErrInvalidOccupants = errors.New("invalid occupant counts")
)

// MaxUnitsPerType caps how many units of one room type a single reservation
// may hold, mirroring the booking form's selector.
const MaxUnitsPerType = 4

// Money is an exact amount in cents. Keeping cents integral means the
// unit price x quantity x nights product never truncates.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyBy(factor int64) Money {
	return Money{cents: m.cents * factor}
}

// Occupants describes who stays in one room type. Infants are tracked for
// the hotel's records but never affect pricing.
type Occupants struct {
	Adults   int
	Children int
	Infants  int
}

func (o Occupants) Validate() error {
	if o.Adults < 1 || o.Children < 0 || o.Infants < 0 {
		return ErrInvalidOccupants
	}
	return nil
}

// RoomSelection is one room-type line of an in-progress reservation.
type RoomSelection struct {
	roomTypeID uuid.UUID
	unitPrice  Money
	quantity   int
	occupants  Occupants
}

func NewRoomSelection(roomTypeID uuid.UUID, unitPrice Money, quantity int, occupants Occupants) (RoomSelection, error) {
	if quantity < 1 {
		return RoomSelection{}, ErrInvalidQuantity
	}
	if err := occupants.Validate(); err != nil {
		return RoomSelection{}, err
	}
	return RoomSelection{
		roomTypeID: roomTypeID,
		unitPrice:  unitPrice,
		quantity:   quantity,
		occupants:  occupants,
	}, nil
}

func (s RoomSelection) RoomTypeID() uuid.UUID { return s.roomTypeID }
func (s RoomSelection) UnitPrice() Money      { return s.unitPrice }
func (s RoomSelection) Quantity() int         { return s.quantity }
func (s RoomSelection) Occupants() Occupants  { return s.occupants }
