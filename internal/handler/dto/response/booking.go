package response

import (
	"jetski-rentals/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingCreatedResponse struct {
	ID    uuid.UUID      `json:"id"`
	Quote *QuoteResponse `json:"quote"`
}

func FromBookingReceipt(receipt *commands.BookingReceipt) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:    receipt.ID,
		Quote: FromQuote(receipt.Quote),
	}
}
