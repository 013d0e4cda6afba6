package roomtype

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomTypeName   = errors.New("room type name cannot be empty")
	ErrRoomTypeNameTooLong = errors.New("room type name is too long (max 255 characters)")
	ErrNegativeUnitPrice   = errors.New("unit price cannot be negative")
	ErrNegativeTotalUnits  = errors.New("total units cannot be negative")
)

const MaxRoomTypeNameLength = 255

// RoomType is one catalog entry of a hotel: a nightly rate and a fixed unit
// inventory. Availability for concrete dates is derived by the query layer;
// the entity only knows its total stock.
type RoomType struct {
	id             uuid.UUID
	hotelID        uuid.UUID
	name           string
	unitPriceCents int64
	totalUnits     int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRoomType(id, hotelID uuid.UUID, name string, unitPriceCents int64, totalUnits int) (*RoomType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomTypeName
	}
	if len(name) > MaxRoomTypeNameLength {
		return nil, ErrRoomTypeNameTooLong
	}
	if unitPriceCents < 0 {
		return nil, ErrNegativeUnitPrice
	}
	if totalUnits < 0 {
		return nil, ErrNegativeTotalUnits
	}

	return &RoomType{
		id:             id,
		hotelID:        hotelID,
		name:           name,
		unitPriceCents: unitPriceCents,
		totalUnits:     totalUnits,
	}, nil
}

func ReconstructRoomType(
	id, hotelID uuid.UUID,
	name string,
	unitPriceCents int64,
	totalUnits int,
	createdAt, updatedAt time.Time,
) *RoomType {
	return &RoomType{
		id:             id,
		hotelID:        hotelID,
		name:           name,
		unitPriceCents: unitPriceCents,
		totalUnits:     totalUnits,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *RoomType) ID() uuid.UUID         { return r.id }
func (r *RoomType) HotelID() uuid.UUID    { return r.hotelID }
func (r *RoomType) Name() string          { return r.name }
func (r *RoomType) UnitPriceCents() int64 { return r.unitPriceCents }
func (r *RoomType) TotalUnits() int       { return r.totalUnits }
func (r *RoomType) CreatedAt() time.Time  { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time  { return r.updatedAt }
