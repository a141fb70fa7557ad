package request

type QuoteRequest struct {
	TierID string        `json:"tier_id" binding:"required"`
	Addons AddonsRequest `json:"addons"`
}
