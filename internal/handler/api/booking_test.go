//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"jetski-rentals/internal/domain/pricing"
	"jetski-rentals/internal/handler/api"
	resdto "jetski-rentals/internal/handler/dto/response"
	"jetski-rentals/internal/usecase/commands"
	"jetski-rentals/tests/common/builder"
	"jetski-rentals/tests/common/httptest"
	"jetski-rentals/tests/common/testutil"
	commandsmock "jetski-rentals/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/bookings", s.handler.CreateBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildDTO()
	receipt := &commands.BookingReceipt{
		ID:    uuid.New(),
		Quote: pricing.ComputeQuote(reqBody.TierID, pricing.AddonsSelection{}),
	}

	s.Run("success: returns 201 Created with the priced quote", func() {
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), reqBody.ToDraft()).
			Return(receipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(receipt.ID, response.ID)
		s.Equal(receipt.Quote.TotalCents, response.Quote.TotalCents)
	})

	s.Run("error: 503 when bookings are paused", func() {
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingsPaused).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "paused")
	})

	s.Run("error: 503 when the backend is unreachable", func() {
		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBackendUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: tier_id (required)", mutate: testutil.Field("tier_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: ride_date (required)", mutate: testutil.Field("ride_date", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: ride_time (required)", mutate: testutil.Field("ride_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: customer_name (required)", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("customer_email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "empty customer name", mutate: testutil.Field("customer_name", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})

	s.Run("free-text date and time pass binding untouched", func() {
		freeText := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RideDate = "next saturday"
			b.RideTime = "around lunch"
		}).BuildDTO()

		s.mockCommands.EXPECT().SubmitBooking(gomock.Any(), freeText.ToDraft()).
			Return(receipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, freeText, "")
		s.Equal(http.StatusCreated, rec.Code)
	})
}
