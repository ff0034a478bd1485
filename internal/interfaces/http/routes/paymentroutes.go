package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
}

// SetupPaymentRoutes configures payment routes.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payments := engine.Group("/api/v1/payments")
	{
		payments.POST("/execute", cfg.PaymentHandler.ExecutePayment)
	}
}
