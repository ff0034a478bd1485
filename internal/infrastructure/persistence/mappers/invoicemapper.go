package mappers

import (
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
)

func InvoiceToModel(inv *invoice.Invoice) *models.InvoiceModel {
	return &models.InvoiceModel{
		ID:           inv.ID(),
		SID:          inv.SID(),
		PayeeAddress: inv.PayeeAddress(),
		PayerEmail:   inv.PayerEmail(),
		Amount:       inv.Amount(),
		Token:        inv.Token().String(),
		Description:  inv.Description(),
		DueDate:      inv.DueDate(),
		Status:       inv.Status().String(),
		TxHash:       inv.TxHash(),
		PaidAt:       inv.PaidAt(),
		Version:      inv.Version(),
		CreatedAt:    inv.CreatedAt(),
		UpdatedAt:    inv.UpdatedAt(),
	}
}

func InvoiceToDomain(model *models.InvoiceModel) (*invoice.Invoice, error) {
	status := vo.InvoiceStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status: %s", model.Status)
	}

	return invoice.ReconstructInvoice(
		model.ID,
		model.SID,
		model.PayeeAddress,
		model.PayerEmail,
		model.Amount,
		vo.Token(model.Token),
		model.Description,
		model.DueDate,
		status,
		model.TxHash,
		model.PaidAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
