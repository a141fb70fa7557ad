package commands

import (
	"context"
	"strings"

	"jetski-rentals/internal/domain/booking"
	"jetski-rentals/internal/domain/pricing"
	"jetski-rentals/internal/infra"
	"jetski-rentals/internal/pkg/clock"
	"jetski-rentals/internal/pkg/config"
	"jetski-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingsPaused     = errs.New("bookings are paused")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrInvalidStatus      = errs.New("invalid status")
	ErrBackendUnavailable = errs.New("reservations backend unavailable")
)

// BookingDraft is the customer's request form as submitted by the site.
// Date and time stay free text; the backend owns any stricter handling.
type BookingDraft struct {
	TierID        string
	RideDate      string
	RideTime      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Addons        pricing.AddonsSelection
}

type BookingReceipt struct {
	ID    uuid.UUID
	Quote pricing.Quote
}

// BookingGateway mutates bookings on the reservations backend.
type BookingGateway interface {
	CreateBooking(ctx context.Context, b booking.Booking) (uuid.UUID, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type BookingCommands interface {
	SubmitBooking(ctx context.Context, draft BookingDraft) (*BookingReceipt, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, rawStatus string) error
}

type bookingUseCaseImpl struct {
	gateway BookingGateway
	cfg     config.BookingConfig
	clock   clock.Clock
}

func NewBookingUseCase(gateway BookingGateway, cfg config.BookingConfig, clock clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{gateway: gateway, cfg: cfg, clock: clock}
}

// SubmitBooking prices the draft and forwards it to the backend. The
// amount is always recomputed here; client-sent totals are never trusted.
func (u *bookingUseCaseImpl) SubmitBooking(ctx context.Context, draft BookingDraft) (*BookingReceipt, error) {
	if u.cfg.Paused {
		return nil, ErrBookingsPaused
	}

	quote := pricing.ComputeQuote(draft.TierID, draft.Addons)
	record := booking.Booking{
		ID:            uuid.New(),
		RideTierID:    quote.TierID,
		RideDate:      strings.TrimSpace(draft.RideDate),
		RideTime:      strings.TrimSpace(draft.RideTime),
		CustomerName:  strings.TrimSpace(draft.CustomerName),
		CustomerEmail: strings.TrimSpace(draft.CustomerEmail),
		CustomerPhone: strings.TrimSpace(draft.CustomerPhone),
		Notes:         strings.TrimSpace(draft.Notes),
		Addons:        draft.Addons,
		Status:        booking.StatusCreated,
		AmountCents:   quote.TotalCents,
		CreatedAt:     u.clock.Now(),
	}

	id, err := u.gateway.CreateBooking(ctx, record)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrBackendUnavailable)
		}
		return nil, err
	}

	return &BookingReceipt{ID: id, Quote: quote}, nil
}

// ChangeStatus applies an operator status change. Only known lifecycle
// labels may be written even though unknown ones render fine on reads.
func (u *bookingUseCaseImpl) ChangeStatus(ctx context.Context, id uuid.UUID, rawStatus string) error {
	status := booking.ParseStatus(rawStatus)
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	if err := u.gateway.UpdateBookingStatus(ctx, id, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		if infra.IsKind(err, infra.KindUnavailable) {
			return errs.Mark(err, ErrBackendUnavailable)
		}
		return err
	}
	return nil
}
