package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"grandehotel-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HotelHandler serves the hotel-scoped read endpoints: the month calendar
// and the room-type catalog with per-stay availability.
type HotelHandler struct {
	availabilityQueries queries.AvailabilityQueries
	roomTypeQueries     queries.RoomTypeQueries
}

func NewHotelHandler(availabilityQueries queries.AvailabilityQueries, roomTypeQueries queries.RoomTypeQueries) *HotelHandler {
	return &HotelHandler{
		availabilityQueries: availabilityQueries,
		roomTypeQueries:     roomTypeQueries,
	}
}

// @Summary Month calendar
// @Description Month grid with leading weekday offset and per-day occupancy
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} queries.CalendarView
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/calendar [get]
func (h *HotelHandler) Calendar(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel ID format"})
		return
	}

	year, yearErr := strconv.Atoi(c.Query("year"))
	month, monthErr := strconv.Atoi(c.Query("month"))
	if yearErr != nil || monthErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query parameters are required"})
		return
	}

	view, err := h.availabilityQueries.MonthCalendar(c.Request.Context(), hotelID, year, month)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidMonth):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid calendar month"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Room-type catalog
// @Description Room types of a hotel with units available for the requested stay
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param check_in query string false "Stay check-in (RFC3339)"
// @Param check_out query string false "Stay check-out (RFC3339)"
// @Success 200 {array} queries.RoomTypeView
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/room-types [get]
func (h *HotelHandler) RoomTypes(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hotel ID format"})
		return
	}

	checkIn, checkOut, err := stayWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stay window format"})
		return
	}

	views, err := h.roomTypeQueries.ListForStay(c.Request.Context(), hotelID, checkIn, checkOut)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// stayWindow parses the optional check_in/check_out pair. Without one the
// catalog reports total units as available.
func stayWindow(c *gin.Context) (time.Time, time.Time, error) {
	rawIn := c.Query("check_in")
	rawOut := c.Query("check_out")
	if rawIn == "" || rawOut == "" {
		return time.Time{}, time.Time{}, nil
	}

	checkIn, err := time.Parse(time.RFC3339, rawIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(time.RFC3339, rawOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
