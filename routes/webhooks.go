package routes

import (
	"blog-backend/handlers/webhooks"

	"github.com/gin-gonic/gin"
)

func WebhooksRoutes(r *gin.Engine, h *webhooks.Handler) {
	r.POST("/api/webhooks/user", h.UserWebhook)
}
