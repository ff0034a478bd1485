package usecases

import (
	"context"
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	"github.com/waveline-inc/waveline/internal/domain/shared/normalize"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListInvoicesUseCase returns a payee's invoices newest-first with a total count.
type ListInvoicesUseCase struct {
	invoiceRepo invoice.InvoiceRepository
	logger      logger.Interface
}

func NewListInvoicesUseCase(invoiceRepo invoice.InvoiceRepository, logger logger.Interface) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

type ListInvoicesQuery struct {
	PayeeAddress string
	Page         int
	PageSize     int
}

type ListInvoicesResult struct {
	Invoices []*invoice.Invoice
	Total    int64
	Page     int
	PageSize int
}

func (uc *ListInvoicesUseCase) Execute(ctx context.Context, query ListInvoicesQuery) (*ListInvoicesResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	payee := normalize.Address(query.PayeeAddress)

	invoices, total, err := uc.invoiceRepo.ListByPayee(ctx, payee, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return &ListInvoicesResult{
		Invoices: invoices,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
