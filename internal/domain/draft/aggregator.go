package draft

import (
	"errors"

	"grandehotel-core/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrNoStayRange    = errors.New("stay range has not been set")
	ErrEmptySelection = errors.New("no room types selected")
)

// Aggregator accumulates a user's room selections against a stay range and
// derives priced totals. One aggregator belongs to exactly one booking
// session; it is not safe for concurrent mutation and callers serialize
// access per session key.
type Aggregator struct {
	stayRange  stay.Range
	rangeSet   bool
	selections map[uuid.UUID]RoomSelection
	order      []uuid.UUID
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		selections: make(map[uuid.UUID]RoomSelection),
	}
}

// SetStay replaces the stay range. Unit prices of existing selections are
// untouched; only the nights multiplier changes.
func (a *Aggregator) SetStay(r stay.Range) error {
	if r.IsZero() {
		return stay.ErrInvalidRange
	}
	a.stayRange = r
	a.rangeSet = true
	return nil
}

func (a *Aggregator) Stay() (stay.Range, bool) {
	return a.stayRange, a.rangeSet
}

// AddOrMerge adds a selection for roomTypeID, or merges into an existing
// one: quantities sum (clamped at MaxUnitsPerType) while occupant counts are
// replaced with the latest configuration. availableUnits bounds the merged
// quantity; it comes from the room-type catalog for the searched dates.
func (a *Aggregator) AddOrMerge(roomTypeID uuid.UUID, unitPrice Money, quantity int, occupants Occupants, availableUnits int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := occupants.Validate(); err != nil {
		return err
	}

	merged := quantity
	if existing, ok := a.selections[roomTypeID]; ok {
		merged += existing.Quantity()
	}
	if merged > MaxUnitsPerType {
		merged = MaxUnitsPerType
	}
	if merged > availableUnits {
		return ErrQuantityExceeded
	}

	sel, err := NewRoomSelection(roomTypeID, unitPrice, merged, occupants)
	if err != nil {
		return err
	}
	if _, ok := a.selections[roomTypeID]; !ok {
		a.order = append(a.order, roomTypeID)
	}
	a.selections[roomTypeID] = sel
	return nil
}

// Remove drops the selection for roomTypeID. Removing an absent key is a
// no-op.
func (a *Aggregator) Remove(roomTypeID uuid.UUID) {
	if _, ok := a.selections[roomTypeID]; !ok {
		return
	}
	delete(a.selections, roomTypeID)
	for i, id := range a.order {
		if id == roomTypeID {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Selections returns the current lines in insertion order.
func (a *Aggregator) Selections() []RoomSelection {
	out := make([]RoomSelection, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.selections[id])
	}
	return out
}

func (a *Aggregator) LineTotal(roomTypeID uuid.UUID) Money {
	sel, ok := a.selections[roomTypeID]
	if !ok {
		return Money{}
	}
	return a.lineTotal(sel)
}

func (a *Aggregator) lineTotal(sel RoomSelection) Money {
	nights := int64(1)
	if a.rangeSet {
		nights = int64(a.stayRange.Nights())
	}
	return sel.UnitPrice().MultiplyBy(int64(sel.Quantity())).MultiplyBy(nights)
}

func (a *Aggregator) GrandTotal() Money {
	var total Money
	for _, id := range a.order {
		total = total.Add(a.lineTotal(a.selections[id]))
	}
	return total
}

// Finalize snapshots the aggregator into an immutable Draft. The aggregator
// stays editable afterwards; another Finalize produces a new draft.
func (a *Aggregator) Finalize(hotelID uuid.UUID) (*Draft, error) {
	if !a.rangeSet {
		return nil, ErrNoStayRange
	}
	if len(a.order) == 0 {
		return nil, ErrEmptySelection
	}
	return newDraft(hotelID, a.stayRange, a.Selections(), a.GrandTotal()), nil
}
