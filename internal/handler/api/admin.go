package api

import (
	"errors"
	"net/http"

	reqdto "jetski-rentals/internal/handler/dto/request"
	resdto "jetski-rentals/internal/handler/dto/response"
	"jetski-rentals/internal/handler/httperr"
	"jetski-rentals/internal/usecase/commands"
	"jetski-rentals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the token-gated operator console.
type AdminHandler struct {
	bookingQueries  queries.BookingQueries
	quizQueries     queries.QuizQueries
	bookingCommands commands.BookingCommands
}

func NewAdminHandler(
	bookingQueries queries.BookingQueries,
	quizQueries queries.QuizQueries,
	bookingCommands commands.BookingCommands,
) *AdminHandler {
	return &AdminHandler{
		bookingQueries:  bookingQueries,
		quizQueries:     quizQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary List bookings
// @Description Get all bookings as rendered table rows, sorted by ride date and time
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingRowResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	rows, err := h.bookingQueries.Table(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation service is unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRows(rows))
}

// @Summary Booking calendar
// @Description Get one month of bookings grouped by day, with per-day weather severity
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param month query string false "Month as YYYY-MM, defaults to the current month"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/calendar [get]
func (h *AdminHandler) GetCalendar(c *gin.Context) {
	view, err := h.bookingQueries.Calendar(c.Request.Context(), c.Query("month"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation service is unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarView(view))
}

// @Summary Booking analytics
// @Description Aggregated booking counts, approved revenue and add-on attach rates
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/analytics [get]
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	view, err := h.bookingQueries.Analytics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation service is unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAnalyticsView(view))
}

// @Summary List quiz submissions
// @Description Get scored safety quiz submissions, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.QuizRowResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/quiz [get]
func (h *AdminHandler) ListQuizSubmissions(c *gin.Context) {
	rows, err := h.quizQueries.Review(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation service is unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuizRows(rows))
}

// @Summary Update booking status
// @Description Change a booking's lifecycle status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.bookingCommands.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown booking status", nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrBackendUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Reservation service is unavailable, please retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
