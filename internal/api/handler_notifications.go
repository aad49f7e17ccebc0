// internal/api/handler_notifications.go
package api

import (
	"net/http"

	"vitalis-server/internal/models"
	"vitalis-server/internal/service/notifications"

	"github.com/gin-gonic/gin"
)

// NotificationsHandler serves the session notification center.
type NotificationsHandler struct {
	svc *notifications.Service
}

func NewNotificationsHandler(svc *notifications.Service) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

// List handles GET /api/notifications, sorted newest first by timestamp.
func (h *NotificationsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.svc.List()})
}

// UnreadCount handles GET /api/notifications/unread-count.
func (h *NotificationsHandler) UnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"unreadCount": h.svc.UnreadCount()})
}

type addNotificationRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
	Type    string `json:"type" binding:"required"`
}

// Add handles POST /api/notifications.
func (h *NotificationsHandler) Add(c *gin.Context) {
	var req addNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	nType := models.NotificationType(req.Type)
	if !models.ValidNotificationType(nType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown notification type"})
		return
	}

	n := h.svc.Add(notifications.Draft{
		Title:   req.Title,
		Message: req.Message,
		Type:    nType,
	})
	c.JSON(http.StatusCreated, gin.H{"notification": n})
}

// MarkAsRead handles POST /api/notifications/:id/read. Unknown ids are a
// no-op and still answer 204.
func (h *NotificationsHandler) MarkAsRead(c *gin.Context) {
	h.svc.MarkAsRead(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// MarkAllAsRead handles POST /api/notifications/read-all.
func (h *NotificationsHandler) MarkAllAsRead(c *gin.Context) {
	h.svc.MarkAllAsRead()
	c.Status(http.StatusNoContent)
}
