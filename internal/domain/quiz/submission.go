package quiz

import (
	"time"

	"github.com/google/uuid"
)

// PassPercent is the minimum score share required to pass the safety quiz.
const PassPercent = 80

// DefaultAnswerKey is the correct option index per question of the
// current safety quiz. Kept alongside the scorer so the quiz content and
// its key change together.
var DefaultAnswerKey = []int{1, 2, 0, 3, 1, 0, 2, 1}

// Submission is one completed safety quiz, scored at submission time.
type Submission struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Answers     []int
	Score       int
	Total       int
	SubmittedAt time.Time
}

// ScoreAnswers counts correct answers against the key. Extra answers are
// ignored; missing answers count as wrong.
func ScoreAnswers(answers, key []int) (correct, total int) {
	total = len(key)
	for i, want := range key {
		if i < len(answers) && answers[i] == want {
			correct++
		}
	}
	return correct, total
}

func (s Submission) Percent() int {
	if s.Total == 0 {
		return 0
	}
	return s.Score * 100 / s.Total
}

func (s Submission) Passed() bool {
	return s.Percent() >= PassPercent
}
