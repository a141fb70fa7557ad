package commands

import (
	"context"
	"strings"
	"time"

	"jetski-rentals/internal/infra"
	"jetski-rentals/internal/pkg/clock"
	"jetski-rentals/internal/pkg/errs"
)

var ErrEmptyMessage = errs.New("empty contact message")

type ContactMessage struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	ReceivedAt time.Time
}

// ContactGateway relays contact form messages to the backend inbox.
type ContactGateway interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

type ContactCommands interface {
	SendMessage(ctx context.Context, msg ContactMessage) error
}

type contactUseCaseImpl struct {
	gateway ContactGateway
	clock   clock.Clock
}

func NewContactUseCase(gateway ContactGateway, clock clock.Clock) ContactCommands {
	return &contactUseCaseImpl{gateway: gateway, clock: clock}
}

func (u *contactUseCaseImpl) SendMessage(ctx context.Context, msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Message == "" {
		return ErrEmptyMessage
	}
	msg.ReceivedAt = u.clock.Now()

	if err := u.gateway.SendContactMessage(ctx, msg); err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return errs.Mark(err, ErrBackendUnavailable)
		}
		return err
	}
	return nil
}
