//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"jetski-rentals/internal/domain/quiz"
	"jetski-rentals/internal/infra"
	"jetski-rentals/internal/pkg/clock"
	"jetski-rentals/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuizGateway struct {
	saved *quiz.Submission
	err   error
}

func (g *fakeQuizGateway) SaveQuizSubmission(_ context.Context, s quiz.Submission) error {
	if g.err != nil {
		return g.err
	}
	g.saved = &s
	return nil
}

func newQuizUseCase(gateway *fakeQuizGateway) commands.QuizCommands {
	mockClock := clock.NewMockClock(time.Date(2025, time.December, 1, 10, 0, 0, 0, time.UTC))
	return commands.NewQuizUseCase(gateway, mockClock)
}

func TestSubmitQuiz(t *testing.T) {
	t.Run("scores against the server-side key", func(t *testing.T) {
		gateway := &fakeQuizGateway{}
		uc := newQuizUseCase(gateway)

		answers := append([]int(nil), quiz.DefaultAnswerKey...)
		result, err := uc.SubmitQuiz(context.Background(), " Alex ", "alex@example.com", answers)
		require.NoError(t, err)

		assert.Equal(t, len(quiz.DefaultAnswerKey), result.Score)
		assert.Equal(t, 100, result.Percent)
		assert.True(t, result.Passed)

		require.NotNil(t, gateway.saved)
		assert.Equal(t, "Alex", gateway.saved.Name)
		assert.False(t, gateway.saved.SubmittedAt.IsZero())
	})

	t.Run("failing score still persists", func(t *testing.T) {
		gateway := &fakeQuizGateway{}
		uc := newQuizUseCase(gateway)

		result, err := uc.SubmitQuiz(context.Background(), "Sam", "sam@example.com", []int{9, 9, 9})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.False(t, result.Passed)
		assert.NotNil(t, gateway.saved)
	})

	t.Run("empty answers rejected", func(t *testing.T) {
		uc := newQuizUseCase(&fakeQuizGateway{})
		_, err := uc.SubmitQuiz(context.Background(), "Sam", "sam@example.com", nil)
		assert.ErrorIs(t, err, commands.ErrNoAnswers)
	})

	t.Run("backend outage maps to a sentinel", func(t *testing.T) {
		gateway := &fakeQuizGateway{err: infra.WrapGatewayErr("backend down", assert.AnError)}
		uc := newQuizUseCase(gateway)

		_, err := uc.SubmitQuiz(context.Background(), "Sam", "sam@example.com", []int{0})
		assert.ErrorIs(t, err, commands.ErrBackendUnavailable)
	})
}
