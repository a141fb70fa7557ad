package commands

import (
	"context"
	"strings"

	"jetski-rentals/internal/domain/quiz"
	"jetski-rentals/internal/infra"
	"jetski-rentals/internal/pkg/clock"
	"jetski-rentals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoAnswers = errs.New("no quiz answers")

type QuizResult struct {
	Score   int
	Total   int
	Percent int
	Passed  bool
}

// QuizGateway stores scored safety quiz submissions on the backend.
type QuizGateway interface {
	SaveQuizSubmission(ctx context.Context, s quiz.Submission) error
}

type QuizCommands interface {
	SubmitQuiz(ctx context.Context, name, email string, answers []int) (*QuizResult, error)
}

type quizUseCaseImpl struct {
	gateway QuizGateway
	clock   clock.Clock
}

func NewQuizUseCase(gateway QuizGateway, clock clock.Clock) QuizCommands {
	return &quizUseCaseImpl{gateway: gateway, clock: clock}
}

// SubmitQuiz scores the answers server-side and persists the result. The
// client never sees the answer key.
func (u *quizUseCaseImpl) SubmitQuiz(ctx context.Context, name, email string, answers []int) (*QuizResult, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}

	score, total := quiz.ScoreAnswers(answers, quiz.DefaultAnswerKey)
	submission := quiz.Submission{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(name),
		Email:       strings.TrimSpace(email),
		Answers:     answers,
		Score:       score,
		Total:       total,
		SubmittedAt: u.clock.Now(),
	}

	if err := u.gateway.SaveQuizSubmission(ctx, submission); err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, ErrBackendUnavailable)
		}
		return nil, err
	}

	return &QuizResult{
		Score:   submission.Score,
		Total:   submission.Total,
		Percent: submission.Percent(),
		Passed:  submission.Passed(),
	}, nil
}
