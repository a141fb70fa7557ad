package request

import (
	"jetski-rentals/internal/domain/pricing"
	"jetski-rentals/internal/usecase/commands"
)

// AddonsRequest mirrors the add-on checkboxes on the booking and quote
// forms.
type AddonsRequest struct {
	DroneVideo      bool `json:"drone_video"`
	GoPro           bool `json:"gopro"`
	Wetsuit         bool `json:"wetsuit"`
	BoatRide        bool `json:"boat_ride"`
	BoatHeadcount   int  `json:"boat_headcount"`
	ExtraPassengers int  `json:"extra_passengers"`
}

func (a AddonsRequest) ToSelection() pricing.AddonsSelection {
	return pricing.AddonsSelection{
		DroneVideo:      a.DroneVideo,
		GoPro:           a.GoPro,
		Wetsuit:         a.Wetsuit,
		BoatRide:        a.BoatRide,
		BoatHeadcount:   a.BoatHeadcount,
		ExtraPassengers: a.ExtraPassengers,
	}
}

// CreateBookingRequest keeps ride date and time as free text; the
// customer types whatever they like and the service renders it later.
type CreateBookingRequest struct {
	TierID        string        `json:"tier_id" binding:"required"`
	RideDate      string        `json:"ride_date" binding:"required"`
	RideTime      string        `json:"ride_time" binding:"required"`
	CustomerName  string        `json:"customer_name" binding:"required"`
	CustomerEmail string        `json:"customer_email" binding:"required,email"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	Addons        AddonsRequest `json:"addons"`
}

func (r CreateBookingRequest) ToDraft() commands.BookingDraft {
	return commands.BookingDraft{
		TierID:        r.TierID,
		RideDate:      r.RideDate,
		RideTime:      r.RideTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
		Addons:        r.Addons.ToSelection(),
	}
}
