package request

import (
	"time"

	"grandehotel-core/internal/usecase/commands"

	"github.com/google/uuid"
)

type SetStayRequest struct {
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
}

type AddRoomRequest struct {
	HotelID    uuid.UUID `json:"hotel_id" binding:"required"`
	RoomTypeID uuid.UUID `json:"room_type_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	Adults     int       `json:"adults" binding:"required,min=1"`
	Children   int       `json:"children" binding:"min=0"`
	Infants    int       `json:"infants" binding:"min=0"`
}

func (r AddRoomRequest) ToInput() commands.AddRoomInput {
	return commands.AddRoomInput{
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		Quantity:   r.Quantity,
		Adults:     r.Adults,
		Children:   r.Children,
		Infants:    r.Infants,
	}
}

type FinalizeDraftRequest struct {
	HotelID uuid.UUID `json:"hotel_id" binding:"required"`
}
