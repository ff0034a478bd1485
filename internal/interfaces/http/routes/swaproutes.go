package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// SwapRouteConfig holds dependencies for swap routes.
type SwapRouteConfig struct {
	SwapHandler *handlers.SwapHandler
}

// SetupSwapRoutes configures token swap routes.
func SetupSwapRoutes(engine *gin.Engine, cfg *SwapRouteConfig) {
	swap := engine.Group("/api/v1/swap")
	{
		swap.GET("/quote", cfg.SwapHandler.GetQuote)
	}
}
