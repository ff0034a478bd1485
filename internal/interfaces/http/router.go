package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/middleware"
	"github.com/waveline-inc/waveline/internal/interfaces/http/routes"
)

// SetupRoutes installs global middlewares and every route group on the engine.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(c.rateLimiter.Limit())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupInvoiceRoutes(c.engine, &routes.InvoiceRouteConfig{
		InvoiceHandler: c.hdlrs.invoiceHandler,
	})
	routes.SetupPaymentRoutes(c.engine, &routes.PaymentRouteConfig{
		PaymentHandler: c.hdlrs.paymentHandler,
	})
	routes.SetupSponsorshipRoutes(c.engine, &routes.SponsorshipRouteConfig{
		SponsorshipHandler: c.hdlrs.sponsorshipHandler,
	})
	routes.SetupReferralRoutes(c.engine, &routes.ReferralRouteConfig{
		ReferralHandler: c.hdlrs.referralHandler,
	})
	routes.SetupSwapRoutes(c.engine, &routes.SwapRouteConfig{
		SwapHandler: c.hdlrs.swapHandler,
	})
	routes.SetupNotificationRoutes(c.engine, &routes.NotificationRouteConfig{
		NotificationHandler: c.hdlrs.notificationHandler,
	})
	routes.SetupReminderRoutes(c.engine, &routes.ReminderRouteConfig{
		ReminderHandler: c.hdlrs.reminderHandler,
	})
}
