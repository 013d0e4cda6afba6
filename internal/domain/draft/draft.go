package draft

import (
	"grandehotel-core/internal/domain/stay"

	"github.com/google/uuid"
)

// Draft is the immutable priced snapshot handed to the persistence layer.
// Selections keep insertion order for deterministic display; the order
// carries no other meaning.
type Draft struct {
	hotelID    uuid.UUID
	stayRange  stay.Range
	selections []RoomSelection
	grandTotal Money
}

func newDraft(hotelID uuid.UUID, stayRange stay.Range, selections []RoomSelection, grandTotal Money) *Draft {
	return &Draft{
		hotelID:    hotelID,
		stayRange:  stayRange,
		selections: selections,
		grandTotal: grandTotal,
	}
}

func (d *Draft) HotelID() uuid.UUID { return d.hotelID }
func (d *Draft) Stay() stay.Range   { return d.stayRange }
func (d *Draft) GrandTotal() Money  { return d.grandTotal }
func (d *Draft) Nights() int        { return d.stayRange.Nights() }

func (d *Draft) Selections() []RoomSelection {
	out := make([]RoomSelection, len(d.selections))
	copy(out, d.selections)
	return out
}
