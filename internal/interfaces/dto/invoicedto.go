package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/domain/invoice"
)

// CreateInvoiceRequest is the payload for issuing a new invoice.
type CreateInvoiceRequest struct {
	PayeeAddress string  `json:"payee_address" binding:"required"`
	Amount       string  `json:"amount" binding:"required"`
	Token        string  `json:"token" binding:"required"`
	PayerEmail   *string `json:"payer_email" binding:"omitempty,email"`
	Description  string  `json:"description"`
	// DueDate is RFC 3339; reminders are only sent for invoices that have one.
	DueDate *time.Time `json:"due_date"`
}

// InvoiceResponse is the public representation of an invoice.
type InvoiceResponse struct {
	SID          string     `json:"id"`
	PayeeAddress string     `json:"payee_address"`
	PayerEmail   *string    `json:"payer_email,omitempty"`
	Amount       string     `json:"amount"`
	Token        string     `json:"token"`
	Description  string     `json:"description,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       string     `json:"status"`
	TxHash       *string    `json:"tx_hash,omitempty"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func InvoiceToResponse(inv *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		SID:          inv.SID(),
		PayeeAddress: inv.PayeeAddress(),
		PayerEmail:   inv.PayerEmail(),
		Amount:       inv.Amount().String(),
		Token:        inv.Token().String(),
		Description:  inv.Description(),
		DueDate:      inv.DueDate(),
		Status:       inv.Status().String(),
		TxHash:       inv.TxHash(),
		PaidAt:       inv.PaidAt(),
		CreatedAt:    inv.CreatedAt(),
	}
}

func InvoicesToResponses(invoices []*invoice.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, InvoiceToResponse(inv))
	}
	return out
}

// ParseAmount converts a decimal string from a request into a decimal value.
func ParseAmount(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(raw)
}
