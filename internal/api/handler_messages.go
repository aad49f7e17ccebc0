// internal/api/handler_messages.go
package api

import (
	"net/http"

	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/models"
	"vitalis-server/internal/service/messages"

	"github.com/gin-gonic/gin"
)

// MessagesHandler serves the outbound message log.
type MessagesHandler struct {
	svc    *messages.Service
	logger logger.Logger
}

func NewMessagesHandler(svc *messages.Service, log logger.Logger) *MessagesHandler {
	return &MessagesHandler{
		svc:    svc,
		logger: log.WithFields(map[string]interface{}{"handler": "messages"}),
	}
}

// List handles GET /api/messages, newest first.
func (h *MessagesHandler) List(c *gin.Context) {
	msgs, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list messages failed", map[string]interface{}{"error": err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

type saveMessageRequest struct {
	Type    string `json:"type" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
	To      string `json:"to" binding:"required"`
}

// Save handles POST /api/messages. The response reflects the persisted
// record only; relay outcome never changes the user-facing result.
func (h *MessagesHandler) Save(c *gin.Context) {
	var req saveMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msgType := models.MessageType(req.Type)
	if !models.ValidMessageType(msgType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown message type"})
		return
	}

	result := h.svc.Save(c.Request.Context(), messages.SaveDraft{
		Type:    msgType,
		Subject: req.Subject,
		Content: req.Content,
		To:      req.To,
	})

	c.JSON(http.StatusCreated, gin.H{"message": result.Message})
}
