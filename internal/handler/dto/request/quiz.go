package request

type QuizRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Answers []int  `json:"answers"`
}
