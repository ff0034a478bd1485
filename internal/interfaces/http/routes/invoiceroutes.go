package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/waveline-inc/waveline/internal/interfaces/http/handlers"
)

// InvoiceRouteConfig holds dependencies for invoice routes.
type InvoiceRouteConfig struct {
	InvoiceHandler *handlers.InvoiceHandler
}

// SetupInvoiceRoutes configures invoice routes.
func SetupInvoiceRoutes(engine *gin.Engine, cfg *InvoiceRouteConfig) {
	invoices := engine.Group("/api/v1/invoices")
	{
		invoices.POST("", cfg.InvoiceHandler.CreateInvoice)
		invoices.GET("", cfg.InvoiceHandler.ListInvoices)
		invoices.GET("/:id", cfg.InvoiceHandler.GetInvoice)
	}
}
