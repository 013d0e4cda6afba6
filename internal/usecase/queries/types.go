package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

type BookingRoomView struct {
	RoomTypeID     uuid.UUID `json:"room_type_id"`
	RoomTypeName   string    `json:"room_type_name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Adults         int       `json:"adults"`
	Children       int       `json:"children"`
	Infants        int       `json:"infants"`
	LineTotalCents int64     `json:"line_total_cents"`
}

type BookingView struct {
	ID         uuid.UUID         `json:"id"`
	HotelID    uuid.UUID         `json:"hotel_id"`
	GuestID    uuid.UUID         `json:"guest_id"`
	GuestName  string            `json:"guest_name"`
	CheckIn    time.Time         `json:"check_in"`
	CheckOut   time.Time         `json:"check_out"`
	Nights     int               `json:"nights"`
	Rooms      []BookingRoomView `json:"rooms"`
	TotalCents int64             `json:"total_cents"`
	Status     string            `json:"status"`
	Actions    []string          `json:"actions"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	GuestName  string    `json:"guest_name"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookingStay is the minimal projection the availability mapper consumes:
// a stay window plus the label rendered in calendar tooltips.
type BookingStay struct {
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	GuestName string    `json:"guest_name"`
}

type RoomTypeView struct {
	ID             uuid.UUID `json:"id"`
	HotelID        uuid.UUID `json:"hotel_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalUnits     int       `json:"total_units"`
	AvailableUnits int       `json:"available_units"`
}

type CalendarDay struct {
	Day    int      `json:"day"`
	Booked bool     `json:"booked"`
	Guests []string `json:"guests,omitempty"`
}

type CalendarView struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	WeekdayOffset int           `json:"weekday_offset"`
	Days          []CalendarDay `json:"days"`
}
