package dto

import (
	"time"

	"github.com/waveline-inc/waveline/internal/application/sponsorship/usecases"
	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
)

// CreateProgramRequest opts a payee into gas sponsorship.
type CreateProgramRequest struct {
	PayeeAddress string `json:"payee_address" binding:"required"`
	TotalBudget  string `json:"total_budget" binding:"required"`
	MaxGasPerTx  string `json:"max_gas_per_tx"`
}

// TopUpProgramRequest adds budget to an existing program.
type TopUpProgramRequest struct {
	PayeeAddress string `json:"payee_address" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
}

// AddFavoriteClientRequest marks a client as favorite for a payee.
type AddFavoriteClientRequest struct {
	PayeeAddress         string `json:"payee_address" binding:"required"`
	ClientEmail          string `json:"client_email" binding:"required,email"`
	ClientName           string `json:"client_name"`
	EnableGasSponsorship bool   `json:"enable_gas_sponsorship"`
	MaxGasPerTx          string `json:"max_gas_per_tx"`
}

// UpdateClientSettingsRequest reconfigures a favorite client's sponsorship.
type UpdateClientSettingsRequest struct {
	PayeeAddress          string `json:"payee_address" binding:"required"`
	ClientEmail           string `json:"client_email" binding:"required,email"`
	GasSponsorshipEnabled *bool  `json:"gas_sponsorship_enabled"`
	MaxGasPerTx           string `json:"max_gas_per_tx"`
}

type ProgramResponse struct {
	PayeeAddress         string    `json:"payee_address"`
	TotalBudget          string    `json:"total_budget"`
	RemainingBudget      string    `json:"remaining_budget"`
	MaxGasPerTx          string    `json:"max_gas_per_tx"`
	IsActive             bool      `json:"is_active"`
	SponsoredTxCount     int64     `json:"sponsored_tx_count"`
	TotalSponsoredAmount string    `json:"total_sponsored_amount"`
	CreatedAt            time.Time `json:"created_at"`
}

func ProgramToResponse(program *sponsorship.Program) ProgramResponse {
	return ProgramResponse{
		PayeeAddress:         program.PayeeAddress(),
		TotalBudget:          program.TotalBudget().String(),
		RemainingBudget:      program.RemainingBudget().String(),
		MaxGasPerTx:          program.MaxGasPerTx().String(),
		IsActive:             program.IsActive(),
		SponsoredTxCount:     program.SponsoredTxCount(),
		TotalSponsoredAmount: program.TotalSponsoredAmount().String(),
		CreatedAt:            program.CreatedAt(),
	}
}

type FavoriteClientResponse struct {
	PayeeAddress          string     `json:"payee_address"`
	ClientEmail           string     `json:"client_email"`
	ClientName            string     `json:"client_name,omitempty"`
	GasSponsorshipEnabled bool       `json:"gas_sponsorship_enabled"`
	MaxGasPerTx           string     `json:"max_gas_per_tx"`
	InvoiceCount          int64      `json:"invoice_count"`
	TotalAmountPaid       string     `json:"total_amount_paid"`
	FirstInvoiceAt        *time.Time `json:"first_invoice_at,omitempty"`
	LastInvoiceAt         *time.Time `json:"last_invoice_at,omitempty"`
	SponsoredTxCount      int64      `json:"sponsored_tx_count"`
	TotalGasSponsored     string     `json:"total_gas_sponsored"`
	AutoAdded             bool       `json:"auto_added"`
}

func FavoriteClientToResponse(favorite *sponsorship.FavoriteClient) FavoriteClientResponse {
	return FavoriteClientResponse{
		PayeeAddress:          favorite.PayeeAddress(),
		ClientEmail:           favorite.ClientEmail(),
		ClientName:            favorite.ClientName(),
		GasSponsorshipEnabled: favorite.GasSponsorshipEnabled(),
		MaxGasPerTx:           favorite.MaxGasPerTx().String(),
		InvoiceCount:          favorite.InvoiceCount(),
		TotalAmountPaid:       favorite.TotalAmountPaid().String(),
		FirstInvoiceAt:        favorite.FirstInvoiceAt(),
		LastInvoiceAt:         favorite.LastInvoiceAt(),
		SponsoredTxCount:      favorite.SponsoredTxCount(),
		TotalGasSponsored:     favorite.TotalGasSponsored().String(),
		AutoAdded:             favorite.AutoAdded(),
	}
}

type SponsoredTransactionResponse struct {
	SID             string    `json:"id"`
	PayeeAddress    string    `json:"payee_address"`
	ClientEmail     string    `json:"client_email"`
	TxHash          string    `json:"tx_hash"`
	OriginalGasFee  string    `json:"original_gas_fee"`
	SponsoredAmount string    `json:"sponsored_amount"`
	Token           string    `json:"token"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func SponsoredTransactionsToResponses(txs []*sponsorship.SponsoredTransaction) []SponsoredTransactionResponse {
	out := make([]SponsoredTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, SponsoredTransactionResponse{
			SID:             tx.SID(),
			PayeeAddress:    tx.PayeeAddress(),
			ClientEmail:     tx.ClientEmail(),
			TxHash:          tx.TxHash(),
			OriginalGasFee:  tx.OriginalGasFee().String(),
			SponsoredAmount: tx.SponsoredAmount().String(),
			Token:           tx.Token(),
			Status:          string(tx.Status()),
			CreatedAt:       tx.CreatedAt(),
		})
	}
	return out
}

type SponsorshipStatsResponse struct {
	TotalBudget          string `json:"total_budget"`
	RemainingBudget      string `json:"remaining_budget"`
	UsedBudget           string `json:"used_budget"`
	MaxGasPerTx          string `json:"max_gas_per_tx"`
	IsActive             bool   `json:"is_active"`
	SponsoredTxCount     int64  `json:"sponsored_tx_count"`
	TotalSponsoredAmount string `json:"total_sponsored_amount"`

	FavoriteClients       int `json:"favorite_clients"`
	SponsorshipEnabledFor int `json:"sponsorship_enabled_for"`
}

func SponsorshipStatsToResponse(stats *usecases.GetStatsResult) SponsorshipStatsResponse {
	return SponsorshipStatsResponse{
		TotalBudget:           stats.TotalBudget.String(),
		RemainingBudget:       stats.RemainingBudget.String(),
		UsedBudget:            stats.UsedBudget.String(),
		MaxGasPerTx:           stats.MaxGasPerTx.String(),
		IsActive:              stats.IsActive,
		SponsoredTxCount:      stats.SponsoredTxCount,
		TotalSponsoredAmount:  stats.TotalSponsoredAmount.String(),
		FavoriteClients:       stats.FavoriteClients,
		SponsorshipEnabledFor: stats.SponsorshipEnabledFor,
	}
}
