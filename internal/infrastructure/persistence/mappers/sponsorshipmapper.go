package mappers

import (
	"fmt"

	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
)

func SponsorshipProgramToModel(p *sponsorship.Program) *models.SponsorshipProgramModel {
	return &models.SponsorshipProgramModel{
		ID:                   p.ID(),
		PayeeAddress:         p.PayeeAddress(),
		TotalBudget:          p.TotalBudget(),
		RemainingBudget:      p.RemainingBudget(),
		MaxGasPerTx:          p.MaxGasPerTx(),
		IsActive:             p.IsActive(),
		SponsoredTxCount:     p.SponsoredTxCount(),
		TotalSponsoredAmount: p.TotalSponsoredAmount(),
		Version:              p.Version(),
		CreatedAt:            p.CreatedAt(),
		UpdatedAt:            p.UpdatedAt(),
	}
}

func SponsorshipProgramToDomain(model *models.SponsorshipProgramModel) *sponsorship.Program {
	return sponsorship.ReconstructProgram(
		model.ID,
		model.PayeeAddress,
		model.TotalBudget,
		model.RemainingBudget,
		model.MaxGasPerTx,
		model.IsActive,
		model.SponsoredTxCount,
		model.TotalSponsoredAmount,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func FavoriteClientToModel(f *sponsorship.FavoriteClient) *models.FavoriteClientModel {
	return &models.FavoriteClientModel{
		ID:                    f.ID(),
		PayeeAddress:          f.PayeeAddress(),
		ClientEmail:           f.ClientEmail(),
		ClientName:            f.ClientName(),
		GasSponsorshipEnabled: f.GasSponsorshipEnabled(),
		MaxGasPerTx:           f.MaxGasPerTx(),
		InvoiceCount:          f.InvoiceCount(),
		TotalAmountPaid:       f.TotalAmountPaid(),
		FirstInvoiceAt:        f.FirstInvoiceAt(),
		LastInvoiceAt:         f.LastInvoiceAt(),
		SponsoredTxCount:      f.SponsoredTxCount(),
		TotalGasSponsored:     f.TotalGasSponsored(),
		AutoAdded:             f.AutoAdded(),
		CreatedAt:             f.CreatedAt(),
		UpdatedAt:             f.UpdatedAt(),
	}
}

func FavoriteClientToDomain(model *models.FavoriteClientModel) *sponsorship.FavoriteClient {
	return sponsorship.ReconstructFavoriteClient(
		model.ID,
		model.PayeeAddress,
		model.ClientEmail,
		model.ClientName,
		model.GasSponsorshipEnabled,
		model.MaxGasPerTx,
		model.InvoiceCount,
		model.TotalAmountPaid,
		model.FirstInvoiceAt,
		model.LastInvoiceAt,
		model.SponsoredTxCount,
		model.TotalGasSponsored,
		model.AutoAdded,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func SponsoredTransactionToModel(tx *sponsorship.SponsoredTransaction) *models.SponsoredTransactionModel {
	return &models.SponsoredTransactionModel{
		ID:              tx.ID(),
		SID:             tx.SID(),
		PayeeAddress:    tx.PayeeAddress(),
		ClientEmail:     tx.ClientEmail(),
		TxHash:          tx.TxHash(),
		OriginalGasFee:  tx.OriginalGasFee(),
		SponsoredAmount: tx.SponsoredAmount(),
		Token:           tx.Token(),
		InvoiceID:       tx.InvoiceID(),
		Status:          string(tx.Status()),
		CreatedAt:       tx.CreatedAt(),
	}
}

func SponsoredTransactionToDomain(model *models.SponsoredTransactionModel) (*sponsorship.SponsoredTransaction, error) {
	status := sponsorship.SponsoredTxStatus(model.Status)
	if status != sponsorship.SponsoredTxStatusCompleted && status != sponsorship.SponsoredTxStatusFailed {
		return nil, fmt.Errorf("invalid sponsored transaction status: %s", model.Status)
	}

	return sponsorship.ReconstructSponsoredTransaction(
		model.ID,
		model.SID,
		model.PayeeAddress,
		model.ClientEmail,
		model.TxHash,
		model.OriginalGasFee,
		model.SponsoredAmount,
		model.Token,
		model.InvoiceID,
		status,
		model.CreatedAt,
	), nil
}
