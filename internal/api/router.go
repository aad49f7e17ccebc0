// internal/api/router.go
package api

import (
	"strconv"
	"time"

	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/common/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router bundles the gin engine with its wired handlers.
type Router struct {
	Engine *gin.Engine
}

// Handlers groups everything the router needs.
type Handlers struct {
	Email         *EmailHandler
	Messages      *MessagesHandler
	Notifications *NotificationsHandler
	Directory     *DirectoryHandler
	Assistant     *AssistantHandler
}

func NewRouter(h Handlers, log logger.Logger) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestMetrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/config-status", h.Email.ConfigStatus)
		apiGroup.POST("/send-email", h.Email.SendEmail)

		apiGroup.GET("/messages", h.Messages.List)
		apiGroup.POST("/messages", h.Messages.Save)

		apiGroup.GET("/notifications", h.Notifications.List)
		apiGroup.GET("/notifications/unread-count", h.Notifications.UnreadCount)
		apiGroup.POST("/notifications", h.Notifications.Add)
		apiGroup.POST("/notifications/:id/read", h.Notifications.MarkAsRead)
		apiGroup.POST("/notifications/read-all", h.Notifications.MarkAllAsRead)

		apiGroup.GET("/doctors", h.Directory.ListDoctors)
		apiGroup.GET("/doctors/:id", h.Directory.GetDoctor)
		apiGroup.GET("/specialties", h.Directory.ListSpecialties)

		apiGroup.POST("/assistant", h.Assistant.Advise)
	}

	log.Info("router initialized", map[string]interface{}{
		"routes": len(r.Routes()),
	})

	return &Router{Engine: r}
}

func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
