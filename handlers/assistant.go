package handlers

import (
	"net/http"

	"realtor/models"
	ai "realtor/services/intelligence"
	"realtor/utils"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the conversational assistant over HTTP.
type AssistantHandler struct {
	Service ai.AssistantService
}

func NewAssistantHandler(service ai.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: service}
}

// Chat processes one conversational turn.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.UserID == "" || req.Text == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "user_id and text are required")
		return
	}

	resp, err := h.Service.ProcessUserInput(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "assistant error", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
