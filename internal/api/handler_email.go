// internal/api/handler_email.go
package api

import (
	"errors"
	"net/http"

	"vitalis-server/internal/common/config"
	apperrors "vitalis-server/internal/common/errors"
	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/service/mailer"

	"github.com/gin-gonic/gin"
)

// EmailHandler serves the relay endpoint and the capability probe.
type EmailHandler struct {
	mailer       *mailer.Service
	integrations config.IntegrationConfig
	logger       logger.Logger
}

func NewEmailHandler(m *mailer.Service, integrations config.IntegrationConfig, log logger.Logger) *EmailHandler {
	return &EmailHandler{
		mailer:       m,
		integrations: integrations,
		logger:       log.WithFields(map[string]interface{}{"handler": "email"}),
	}
}

// ConfigStatus handles GET /api/config-status. A pure configuration probe:
// no side effects, always succeeds.
func (h *EmailHandler) ConfigStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"emailService": h.integrations.EmailConfigured(),
		"mapsService":  h.integrations.MapsConfigured(),
		"aiService":    h.integrations.AIConfigured(),
	})
}

type sendEmailRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SendEmail handles POST /api/send-email. Provider detail never reaches the
// client; only the generic message does.
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.mailer.Send(c.Request.Context(), req.To, req.Subject, req.Content)
	if err != nil {
		var stdErr *apperrors.StandardError
		if errors.As(err, &stdErr) {
			h.logger.Error("send email failed", map[string]interface{}{
				"code":    stdErr.Code,
				"details": stdErr.Details,
			})
			c.JSON(stdErr.HTTPStatus(), gin.H{"error": stdErr.Message})
			return
		}
		h.logger.Error("send email failed", map[string]interface{}{"error": err})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
