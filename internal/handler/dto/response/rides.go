package response

import (
	"jetski-rentals/internal/domain/pricing"

	"github.com/jinzhu/copier"
)

type RideTierResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	BasePriceEUR       int    `json:"basePriceEur"`
	MaxExtraPassengers int    `json:"maxExtraPassengers"`
	DroneBundled       bool   `json:"droneBundled"`
}

func FromTiers(tiers []pricing.RideTier) []RideTierResponse {
	resp := make([]RideTierResponse, 0, len(tiers))
	_ = copier.Copy(&resp, &tiers)
	return resp
}
