package pricing

// RideTier is a static catalog entry: a bookable session defined by
// duration and jet-ski count. Base prices are exact euro amounts; all
// computed quotes are in integer cents.
type RideTier struct {
	ID                 string
	Title              string
	BasePriceEUR       int
	MaxExtraPassengers int
	DroneBundled       bool
}

// DefaultTierID is the fallback applied when a request carries an unknown
// tier id; the quote endpoint must never fail on catalog lookups.
const DefaultTierID = "30-1"

var catalog = []RideTier{
	{ID: "30-1", Title: "30 minutes - single jet ski", BasePriceEUR: 95, MaxExtraPassengers: 1},
	{ID: "60-1", Title: "1 hour - single jet ski", BasePriceEUR: 150, MaxExtraPassengers: 1},
	{ID: "30-2", Title: "30 minutes - two jet skis", BasePriceEUR: 180, MaxExtraPassengers: 2},
	{ID: "60-2", Title: "1 hour - two jet skis", BasePriceEUR: 280, MaxExtraPassengers: 2, DroneBundled: true},
}

// Tiers returns a copy of the ride catalog in display order.
func Tiers() []RideTier {
	out := make([]RideTier, len(catalog))
	copy(out, catalog)
	return out
}

// TierByID resolves a tier id, falling back to the default tier for
// unknown ids.
func TierByID(id string) RideTier {
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return TierByID(DefaultTierID)
}

// IsKnownTier reports whether the id exists in the catalog.
func IsKnownTier(id string) bool {
	for _, t := range catalog {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (t RideTier) BasePriceCents() int {
	return t.BasePriceEUR * 100
}
