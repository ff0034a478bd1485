package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/shared/errors"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

// CreateInvoiceUseCase issues a new invoice for a payee. The invoice starts
// pending and is settled later through the payment workflow.
type CreateInvoiceUseCase struct {
	invoiceRepo invoice.InvoiceRepository
	logger      logger.Interface
}

func NewCreateInvoiceUseCase(invoiceRepo invoice.InvoiceRepository, logger logger.Interface) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{invoiceRepo: invoiceRepo, logger: logger}
}

type CreateInvoiceCommand struct {
	PayeeAddress string
	Amount       decimal.Decimal
	Token        string
	// PayerEmail is optional at creation; payers may also provide it when paying.
	PayerEmail  *string
	Description string
	// DueDate is optional; overdue reminders only apply to invoices that have one.
	DueDate *time.Time
}

func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
	token := vo.NewToken(cmd.Token)
	if !token.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported token %q", cmd.Token))
	}

	inv, err := invoice.NewInvoice(cmd.PayeeAddress, cmd.Amount, token, cmd.PayerEmail, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.DueDate != nil {
		if err := inv.SetDueDate(*cmd.DueDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	uc.logger.Infow("invoice created",
		"sid", inv.SID(),
		"payee", inv.PayeeAddress(),
		"amount", inv.Amount(),
		"token", inv.Token(),
	)
	return inv, nil
}
