// internal/api/handler_assistant.go
package api

import (
	"net/http"

	"vitalis-server/internal/service/assistant"

	"github.com/gin-gonic/gin"
)

// AssistantHandler proxies health questions to the GenAI integration.
type AssistantHandler struct {
	svc *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{svc: svc}
}

type adviseRequest struct {
	Query string `json:"query" binding:"required"`
}

// Advise handles POST /api/assistant. Provider failures degrade to the
// canned reply; the endpoint itself always answers 200 for valid requests.
func (h *AssistantHandler) Advise(c *gin.Context) {
	var req adviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": h.svc.Advise(c.Request.Context(), req.Query)})
}
