package api

import (
	"net/http"

	"jetski-rentals/internal/domain/pricing"
	reqdto "jetski-rentals/internal/handler/dto/request"
	resdto "jetski-rentals/internal/handler/dto/response"
	"jetski-rentals/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// RidesHandler serves the ride catalog and the quote calculator. Both
// are pure: no backend round trip is involved.
type RidesHandler struct{}

func NewRidesHandler() *RidesHandler {
	return &RidesHandler{}
}

// @Summary List ride tiers
// @Description Get the bookable ride catalog with base prices
// @Tags rides
// @Produce json
// @Success 200 {array} resdto.RideTierResponse
// @Router /rides [get]
func (h *RidesHandler) ListRides(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromTiers(pricing.Tiers()))
}

// @Summary Compute a quote
// @Description Price a ride tier with the selected add-ons
// @Tags rides
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /quotes [post]
func (h *RidesHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	quote := pricing.ComputeQuote(req.TierID, req.Addons.ToSelection())
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
