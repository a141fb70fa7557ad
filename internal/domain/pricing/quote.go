package pricing

// Add-on rates in cents. Business constants, changed here and nowhere else.
const (
	DroneVideoCents     = 6000
	WetsuitCents        = 1500
	BoatPerPersonCents  = 4000
	ExtraPassengerCents = 2500

	BoatMinHeadcount = 1
	BoatMaxHeadcount = 10
)

// AddonsSelection is the customer's chosen extras. Explicit fields with
// zero-value defaults, not an open-ended map, so the quote contract is
// statically checkable.
type AddonsSelection struct {
	DroneVideo      bool
	GoPro           bool
	Wetsuit         bool
	BoatRide        bool
	BoatHeadcount   int
	ExtraPassengers int
}

// QuoteLine is one itemized entry of a quote.
//   - Included: bundled with the tier at no charge, shown as such.
//   - OnRequest: shown to the customer but priced offline; contributes
//     nothing to the computed total.
type QuoteLine struct {
	Label       string
	AmountCents int
	Included    bool
	OnRequest   bool
}

type Quote struct {
	TierID     string
	TierTitle  string
	BaseCents  int
	Lines      []QuoteLine
	TotalCents int
}

// ComputeQuote prices a ride tier plus add-on selection. Deterministic:
// identical inputs produce identical output. All amounts are non-negative
// integer cents; totals are exact sums, never float accumulation.
func ComputeQuote(tierID string, sel AddonsSelection) Quote {
	tier := TierByID(tierID)

	q := Quote{
		TierID:    tier.ID,
		TierTitle: tier.Title,
		BaseCents: tier.BasePriceCents(),
	}

	if sel.DroneVideo {
		line := QuoteLine{Label: "Drone video", AmountCents: DroneVideoCents}
		if tier.DroneBundled {
			line.AmountCents = 0
			line.Included = true
		}
		q.Lines = append(q.Lines, line)
	}

	if sel.GoPro {
		q.Lines = append(q.Lines, QuoteLine{Label: "GoPro rental", OnRequest: true})
	}

	if sel.Wetsuit {
		q.Lines = append(q.Lines, QuoteLine{Label: "Wetsuit", AmountCents: WetsuitCents})
	}

	if sel.BoatRide {
		headcount := clampInt(sel.BoatHeadcount, BoatMinHeadcount, BoatMaxHeadcount)
		q.Lines = append(q.Lines, QuoteLine{
			Label:       "Boat ride",
			AmountCents: BoatPerPersonCents * headcount,
		})
	}

	if sel.ExtraPassengers > 0 {
		count := clampInt(sel.ExtraPassengers, 0, tier.MaxExtraPassengers)
		if count > 0 {
			q.Lines = append(q.Lines, QuoteLine{
				Label:       "Extra passengers",
				AmountCents: ExtraPassengerCents * count,
			})
		}
	}

	q.TotalCents = q.BaseCents
	for _, line := range q.Lines {
		q.TotalCents += line.AmountCents
	}

	return q
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
