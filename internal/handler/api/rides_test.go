//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"jetski-rentals/internal/domain/pricing"
	"jetski-rentals/internal/handler/api"
	reqdto "jetski-rentals/internal/handler/dto/request"
	resdto "jetski-rentals/internal/handler/dto/response"
	"jetski-rentals/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type RidesHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	handler *api.RidesHandler
}

func (s *RidesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.handler = api.NewRidesHandler()

	s.router.GET("/rides", s.handler.ListRides)
	s.router.POST("/quotes", s.handler.Quote)
}

func TestRidesHandlerSuite(t *testing.T) {
	suite.Run(t, new(RidesHandlerTestSuite))
}

func (s *RidesHandlerTestSuite) TestListRides() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rides", nil, "")

	var response []resdto.RideTierResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, len(pricing.Tiers()))
	s.Equal(pricing.Tiers()[0].ID, response[0].ID)
	s.Equal(pricing.Tiers()[0].Title, response[0].Title)
}

func (s *RidesHandlerTestSuite) TestQuote() {
	s.Run("success: prices base plus add-ons", func() {
		body := reqdto.QuoteRequest{
			TierID: "30-1",
			Addons: reqdto.AddonsRequest{DroneVideo: true, Wetsuit: true},
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)

		expected := pricing.ComputeQuote("30-1", pricing.AddonsSelection{DroneVideo: true, Wetsuit: true})
		s.Equal(expected.TotalCents, response.TotalCents)
		s.Equal(expected.TierID, response.TierID)
		s.Len(response.Lines, len(expected.Lines))
	})

	s.Run("success: unknown tier falls back to the default", func() {
		body := reqdto.QuoteRequest{TierID: "jetpack-9000"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(pricing.DefaultTierID, response.TierID)
	})

	s.Run("error: 400 on a non-JSON body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", "not json", "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
