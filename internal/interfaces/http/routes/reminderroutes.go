package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// ReminderRouteConfig holds dependencies for payment reminder routes.
type ReminderRouteConfig struct {
	ReminderHandler *handlers.ReminderHandler
}

// SetupReminderRoutes configures payment reminder routes.
func SetupReminderRoutes(engine *gin.Engine, cfg *ReminderRouteConfig) {
	invoices := engine.Group("/api/v1/invoices")
	{
		invoices.POST("/:id/reminders", cfg.ReminderHandler.SendReminder)
		invoices.GET("/:id/reminders", cfg.ReminderHandler.ListReminders)
	}

	preferences := engine.Group("/api/v1/reminders/preferences")
	{
		preferences.GET("/:address", cfg.ReminderHandler.GetPreferences)
		preferences.PUT("", cfg.ReminderHandler.UpdatePreferences)
	}
}
