package api

import (
	"errors"
	"net/http"

	reqdto "jetski-rentals/internal/handler/dto/request"
	resdto "jetski-rentals/internal/handler/dto/response"
	"jetski-rentals/internal/handler/httperr"
	"jetski-rentals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizCommands commands.QuizCommands
}

func NewQuizHandler(quizCommands commands.QuizCommands) *QuizHandler {
	return &QuizHandler{
		quizCommands: quizCommands,
	}
}

// @Summary Submit safety quiz
// @Description Score a completed safety quiz and store the result
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body reqdto.QuizRequest true "Quiz answers"
// @Success 200 {object} resdto.QuizResultResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /quiz [post]
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req reqdto.QuizRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.quizCommands.SubmitQuiz(c.Request.Context(), req.Name, req.Email, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoAnswers):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Quiz answers are required", nil)
		case errors.Is(err, commands.ErrBackendUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Quiz service is unavailable, please retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuizResult(result))
}
