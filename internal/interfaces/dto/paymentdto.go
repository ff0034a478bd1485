package dto

import (
	"github.com/waveline-inc/waveline/internal/application/payment/usecases"
)

// ExecutePaymentRequest is the payload for settling an invoice on-chain.
type ExecutePaymentRequest struct {
	InvoiceID    string  `json:"invoice_id" binding:"required"`
	PayerAddress string  `json:"payer_address" binding:"required"`
	PayerEmail   *string `json:"payer_email" binding:"omitempty,email"`
}

// ExecutePaymentResponse reports the settlement outcome.
type ExecutePaymentResponse struct {
	Success            bool   `json:"success"`
	TransactionHash    string `json:"transaction_hash,omitempty"`
	FeeWaived          bool   `json:"fee_waived"`
	GasSponsorshipUsed bool   `json:"gas_sponsorship_used"`
	ErrorMessage       string `json:"error_message,omitempty"`
}

func ExecutePaymentResultToResponse(result *usecases.ExecutePaymentResult) ExecutePaymentResponse {
	return ExecutePaymentResponse{
		Success:            result.Success,
		TransactionHash:    result.TransactionHash,
		FeeWaived:          result.FeeWaived,
		GasSponsorshipUsed: result.GasSponsorshipUsed,
		ErrorMessage:       result.ErrorMessage,
	}
}
