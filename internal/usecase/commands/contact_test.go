//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"jetski-rentals/internal/infra"
	"jetski-rentals/internal/pkg/clock"
	"jetski-rentals/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactGateway struct {
	sent *commands.ContactMessage
	err  error
}

func (g *fakeContactGateway) SendContactMessage(_ context.Context, msg commands.ContactMessage) error {
	if g.err != nil {
		return g.err
	}
	g.sent = &msg
	return nil
}

func TestSendMessage(t *testing.T) {
	now := time.Date(2025, time.December, 1, 10, 0, 0, 0, time.UTC)

	t.Run("trims and stamps the message", func(t *testing.T) {
		gateway := &fakeContactGateway{}
		uc := commands.NewContactUseCase(gateway, clock.NewMockClock(now))

		err := uc.SendMessage(context.Background(), commands.ContactMessage{
			Name:    " Alex ",
			Email:   "alex@example.com",
			Message: "  Do you run sunset rides?  ",
		})
		require.NoError(t, err)

		require.NotNil(t, gateway.sent)
		assert.Equal(t, "Alex", gateway.sent.Name)
		assert.Equal(t, "Do you run sunset rides?", gateway.sent.Message)
		assert.Equal(t, now, gateway.sent.ReceivedAt)
	})

	t.Run("whitespace-only message rejected", func(t *testing.T) {
		gateway := &fakeContactGateway{}
		uc := commands.NewContactUseCase(gateway, clock.NewMockClock(now))

		err := uc.SendMessage(context.Background(), commands.ContactMessage{Message: "   "})
		assert.ErrorIs(t, err, commands.ErrEmptyMessage)
		assert.Nil(t, gateway.sent)
	})

	t.Run("backend outage maps to a sentinel", func(t *testing.T) {
		gateway := &fakeContactGateway{err: infra.WrapGatewayErr("backend down", assert.AnError)}
		uc := commands.NewContactUseCase(gateway, clock.NewMockClock(now))

		err := uc.SendMessage(context.Background(), commands.ContactMessage{Message: "hello"})
		assert.ErrorIs(t, err, commands.ErrBackendUnavailable)
	})
}
