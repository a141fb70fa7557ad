package api

import (
	"errors"
	"net/http"

	reqdto "jetski-rentals/internal/handler/dto/request"
	resdto "jetski-rentals/internal/handler/dto/response"
	"jetski-rentals/internal/handler/httperr"
	"jetski-rentals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Create booking
// @Description Submit a booking request; the amount is priced server-side
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	receipt, err := h.bookingCommands.SubmitBooking(c.Request.Context(), req.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingsPaused):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Bookings are temporarily paused", nil)
		case errors.Is(err, commands.ErrBackendUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation service is unavailable, please retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingReceipt(receipt))
}
