package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// NotificationRouteConfig holds dependencies for notification routes.
type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
}

// SetupNotificationRoutes configures in-app notification routes.
func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	notifications := engine.Group("/api/v1/notifications")
	{
		notifications.GET("/:address", cfg.NotificationHandler.ListNotifications)
		notifications.PUT("/:id/read", cfg.NotificationHandler.MarkRead)
	}
}
