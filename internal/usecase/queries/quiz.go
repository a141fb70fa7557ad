package queries

import (
	"context"
	"sort"

	"jetski-rentals/internal/domain/quiz"
)

// QuizSource reads stored safety quiz submissions from the backend.
type QuizSource interface {
	ListQuizSubmissions(ctx context.Context) ([]quiz.Submission, error)
}

type QuizQueries interface {
	Review(ctx context.Context) ([]QuizRow, error)
}

type quizQueriesImpl struct {
	source QuizSource
}

func NewQuizQueries(source QuizSource) QuizQueries {
	return &quizQueriesImpl{source: source}
}

// Review lists submissions newest first for the admin console.
func (q *quizQueriesImpl) Review(ctx context.Context) ([]QuizRow, error) {
	submissions, err := q.source.ListQuizSubmissions(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]QuizRow, 0, len(submissions))
	for _, s := range submissions {
		rows = append(rows, QuizRow{
			ID:          s.ID,
			Name:        s.Name,
			Email:       s.Email,
			Score:       s.Score,
			Total:       s.Total,
			Percent:     s.Percent(),
			Passed:      s.Passed(),
			SubmittedAt: s.SubmittedAt,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SubmittedAt.After(rows[j].SubmittedAt)
	})
	return rows, nil
}
