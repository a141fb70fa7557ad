package response

import (
	"jetski-rentals/internal/domain/pricing"

	"github.com/jinzhu/copier"
)

type QuoteLineResponse struct {
	Label       string `json:"label"`
	AmountCents int    `json:"amountCents"`
	Included    bool   `json:"included,omitempty"`
	OnRequest   bool   `json:"onRequest,omitempty"`
}

type QuoteResponse struct {
	TierID     string              `json:"tierId"`
	TierTitle  string              `json:"tierTitle"`
	BaseCents  int                 `json:"baseCents"`
	Lines      []QuoteLineResponse `json:"lines"`
	TotalCents int                 `json:"totalCents"`
}

func FromQuote(q pricing.Quote) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, &q)
	return &resp
}
