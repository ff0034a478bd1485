package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// ReferralRouteConfig holds dependencies for referral routes.
type ReferralRouteConfig struct {
	ReferralHandler *handlers.ReferralHandler
}

// SetupReferralRoutes configures referral program routes.
func SetupReferralRoutes(engine *gin.Engine, cfg *ReferralRouteConfig) {
	referrals := engine.Group("/api/v1/referrals")
	{
		referrals.POST("/signup", cfg.ReferralHandler.RecordSignup)
		referrals.POST("/claim", cfg.ReferralHandler.ClaimRewards)
		referrals.GET("/:address/code", cfg.ReferralHandler.GetCode)
		referrals.GET("/:address/stats", cfg.ReferralHandler.GetStats)
		referrals.GET("/:address/rewards", cfg.ReferralHandler.ListRewards)
	}
}
