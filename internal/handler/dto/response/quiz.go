package response

import "jetski-rentals/internal/usecase/commands"

type QuizResultResponse struct {
	Score   int  `json:"score"`
	Total   int  `json:"total"`
	Percent int  `json:"percent"`
	Passed  bool `json:"passed"`
}

func FromQuizResult(result *commands.QuizResult) *QuizResultResponse {
	return &QuizResultResponse{
		Score:   result.Score,
		Total:   result.Total,
		Percent: result.Percent,
		Passed:  result.Passed,
	}
}
