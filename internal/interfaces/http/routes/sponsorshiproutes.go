package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// SponsorshipRouteConfig holds dependencies for sponsorship routes.
type SponsorshipRouteConfig struct {
	SponsorshipHandler *handlers.SponsorshipHandler
}

// SetupSponsorshipRoutes configures gas sponsorship and favorite client routes.
func SetupSponsorshipRoutes(engine *gin.Engine, cfg *SponsorshipRouteConfig) {
	sponsorship := engine.Group("/api/v1/sponsorship")
	{
		programs := sponsorship.Group("/programs")
		{
			programs.POST("", cfg.SponsorshipHandler.CreateProgram)
			// Specific path registered before the parameterized one.
			programs.POST("/topup", cfg.SponsorshipHandler.TopUpProgram)
			programs.GET("/:address", cfg.SponsorshipHandler.GetStats)
			programs.GET("/:address/transactions", cfg.SponsorshipHandler.ListSponsoredTransactions)
		}

		favorites := sponsorship.Group("/favorites")
		{
			favorites.POST("", cfg.SponsorshipHandler.AddFavoriteClient)
			favorites.PUT("/settings", cfg.SponsorshipHandler.UpdateClientSettings)
			favorites.GET("/:address", cfg.SponsorshipHandler.ListFavoriteClients)
		}
	}
}
