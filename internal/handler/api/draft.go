package api

import (
	"errors"
	"net/http"

	reqdto "grandehotel-core/internal/handler/dto/request"
	"grandehotel-core/internal/handler/middleware"
	"grandehotel-core/internal/usecase/commands"
	"grandehotel-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DraftHandler edits the per-session booking draft. The session key is the
// authenticated user's ID, so one user has one draft at a time.
type DraftHandler struct {
	draftCommands commands.DraftCommands
	userQueries   queries.UserQueries
}

func NewDraftHandler(draftCommands commands.DraftCommands, userQueries queries.UserQueries) *DraftHandler {
	return &DraftHandler{
		draftCommands: draftCommands,
		userQueries:   userQueries,
	}
}

// @Summary Set stay range
// @Description Set the draft's check-in and check-out
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetStayRequest true "Stay range"
// @Success 200 {object} commands.DraftView
// @Failure 400 {object} map[string]string
// @Router /drafts/stay [put]
func (h *DraftHandler) SetStay(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SetStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.draftCommands.SetStay(c.Request.Context(), userID, req.CheckIn, req.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Check-out must be after check-in"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Add or merge a room selection
// @Description Add a room type to the draft; an existing line for the same room type merges quantities
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddRoomRequest true "Room selection"
// @Success 200 {object} commands.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /drafts/rooms [post]
func (h *DraftHandler) AddRoom(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.draftCommands.AddRoom(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
		case errors.Is(err, commands.ErrWrongHotel):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room type belongs to a different hotel"})
		case errors.Is(err, commands.ErrQuantityExceeded):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requested quantity exceeds availability"})
		case errors.Is(err, commands.ErrInvalidOccupants):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid occupant counts"})
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Remove a room selection
// @Description Remove a room type from the draft; removing an absent line is a no-op
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param roomTypeId path string true "Room type ID"
// @Success 200 {object} commands.DraftView
// @Failure 400 {object} map[string]string
// @Router /drafts/rooms/{roomTypeId} [delete]
func (h *DraftHandler) RemoveRoom(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	roomTypeID, err := uuid.Parse(c.Param("roomTypeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room type ID format"})
		return
	}

	view, err := h.draftCommands.RemoveRoom(c.Request.Context(), userID, roomTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Get the current draft
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.DraftView
// @Router /drafts [get]
func (h *DraftHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.draftCommands.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Finalize the draft
// @Description Snapshot the draft and persist it as a pending booking
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FinalizeDraftRequest true "Finalize request"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /drafts/finalize [post]
func (h *DraftHandler) Finalize(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.FinalizeDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// The booking keeps the guest's display name as entered at creation time.
	guest, err := h.userQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.draftCommands.Finalize(c.Request.Context(), userID, req.HotelID, userID, guest.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoStayRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Stay range has not been set"})
		case errors.Is(err, commands.ErrEmptySelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No room types selected"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}
