//go:build unit || e2e

package builder

import (
	"time"

	"jetski-rentals/internal/domain/booking"
	"jetski-rentals/internal/domain/pricing"
	reqdto "jetski-rentals/internal/handler/dto/request"
	"jetski-rentals/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	TierID        string
	RideDate      string
	RideTime      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Addons        pricing.AddonsSelection
	Status        string
	AmountCents   int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		TierID:        "30-1",
		RideDate:      "2025-12-16",
		RideTime:      "14h30",
		CustomerName:  "Alex Martin",
		CustomerEmail: "alex@example.com",
		CustomerPhone: "+33 6 12 34 56 78",
		Status:        "created",
		AmountCents:   9500,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TierID:        b.TierID,
		RideDate:      b.RideDate,
		RideTime:      b.RideTime,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		Addons: reqdto.AddonsRequest{
			DroneVideo:      b.Addons.DroneVideo,
			GoPro:           b.Addons.GoPro,
			Wetsuit:         b.Addons.Wetsuit,
			BoatRide:        b.Addons.BoatRide,
			BoatHeadcount:   b.Addons.BoatHeadcount,
			ExtraPassengers: b.Addons.ExtraPassengers,
		},
	}
}

func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:            uuid.New(),
		RideTierID:    b.TierID,
		RideDate:      b.RideDate,
		RideTime:      b.RideTime,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		Addons:        b.Addons,
		Status:        booking.Status(b.Status),
		AmountCents:   b.AmountCents,
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) BuildRow() queries.BookingRow {
	tier := pricing.TierByID(b.TierID)
	status := booking.Status(b.Status)
	return queries.BookingRow{
		ID:            uuid.New(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		TierID:        tier.ID,
		TierTitle:     tier.Title,
		DateLabel:     "16th December 2025",
		TimeLabel:     "2:30 PM",
		Status:        status.String(),
		StatusLabel:   status.Label(),
		Tone:          string(status.Tone()),
		AmountCents:   b.AmountCents,
		CreatedAt:     time.Now(),
	}
}
