package booking

import (
	"time"

	"jetski-rentals/internal/domain/pricing"

	"github.com/google/uuid"
)

// Booking is one reservation record as served by the reservations
// backend. RideDate and RideTime are free-text: operator- or
// customer-entered, with no guaranteed format. This service only reads
// bookings and derives display values; all mutations go through the
// backend.
type Booking struct {
	ID            uuid.UUID
	RideTierID    string
	RideDate      string
	RideTime      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Addons        pricing.AddonsSelection
	Status        Status
	AmountCents   int
	CreatedAt     time.Time
}

// Normalized enforces the record invariants on data crossing the wire:
// the amount is never negative and the status label is canonicalized.
func (b Booking) Normalized() Booking {
	b.Status = ParseStatus(string(b.Status))
	if b.AmountCents < 0 {
		b.AmountCents = 0
	}
	return b
}
