//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"jetski-rentals/internal/domain/quiz"
	"jetski-rentals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuizSource struct {
	submissions []quiz.Submission
	err         error
}

func (s *stubQuizSource) ListQuizSubmissions(_ context.Context) ([]quiz.Submission, error) {
	return s.submissions, s.err
}

func TestQuizQueriesReview(t *testing.T) {
	base := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	older := quiz.Submission{ID: uuid.New(), Name: "Sam", Score: 8, Total: 8, SubmittedAt: base}
	newer := quiz.Submission{ID: uuid.New(), Name: "Lou", Score: 5, Total: 8, SubmittedAt: base.Add(2 * time.Hour)}

	q := queries.NewQuizQueries(&stubQuizSource{submissions: []quiz.Submission{older, newer}})

	rows, err := q.Review(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Lou", rows[0].Name, "newest first")
	assert.Equal(t, 62, rows[0].Percent)
	assert.False(t, rows[0].Passed)

	assert.Equal(t, "Sam", rows[1].Name)
	assert.Equal(t, 100, rows[1].Percent)
	assert.True(t, rows[1].Passed)
}

func TestQuizQueriesReviewError(t *testing.T) {
	q := queries.NewQuizQueries(&stubQuizSource{err: assert.AnError})
	_, err := q.Review(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
