package usecases

import (
	"context"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// GetInvoiceUseCase fetches a single invoice by its public SID.
type GetInvoiceUseCase struct {
	invoiceRepo invoice.InvoiceRepository
	logger      logger.Interface
}

func NewGetInvoiceUseCase(invoiceRepo invoice.InvoiceRepository, logger logger.Interface) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

func (uc *GetInvoiceUseCase) Execute(ctx context.Context, sid string) (*invoice.Invoice, error) {
	return uc.invoiceRepo.GetBySID(ctx, sid)
}
