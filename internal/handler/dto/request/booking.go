package request

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
