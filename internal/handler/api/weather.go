package api

import (
	"net/http"

	resdto "jetski-rentals/internal/handler/dto/response"
	"jetski-rentals/internal/handler/httperr"
	"jetski-rentals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	weatherQueries queries.WeatherQueries
}

func NewWeatherHandler(weatherQueries queries.WeatherQueries) *WeatherHandler {
	return &WeatherHandler{
		weatherQueries: weatherQueries,
	}
}

// @Summary Weather advice
// @Description Daily ride conditions with severity bands and a suggested window
// @Tags weather
// @Produce json
// @Success 200 {object} resdto.WeatherResponse
// @Failure 503 {object} map[string]string
// @Router /weather [get]
func (h *WeatherHandler) GetAdvice(c *gin.Context) {
	view, err := h.weatherQueries.Advice(c.Request.Context())
	if err != nil {
		// Any provider failure degrades the same way for the site.
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Weather service is unavailable", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeatherView(view))
}
