package api

import (
	"errors"
	"net/http"

	reqdto "jetski-rentals/internal/handler/dto/request"
	"jetski-rentals/internal/handler/httperr"
	"jetski-rentals/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactCommands commands.ContactCommands
}

func NewContactHandler(contactCommands commands.ContactCommands) *ContactHandler {
	return &ContactHandler{
		contactCommands: contactCommands,
	}
}

// @Summary Send contact message
// @Description Relay a contact form message to the rental operators
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact message"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /contact [post]
func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req reqdto.ContactRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.contactCommands.SendMessage(c.Request.Context(), req.ToMessage()); err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyMessage):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Message cannot be empty", nil)
		case errors.Is(err, commands.ErrBackendUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Message service is unavailable, please retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "sent",
	})
}
