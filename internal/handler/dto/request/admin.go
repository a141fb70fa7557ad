package request

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
