package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/mappers"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
	"github.com/waveline-inc/waveline/internal/shared/db"
)

type FavoriteClientRepository struct {
	db *gorm.DB
}

func NewFavoriteClientRepository(db *gorm.DB) *FavoriteClientRepository {
	return &FavoriteClientRepository{db: db}
}

func (r *FavoriteClientRepository) Create(ctx context.Context, client *sponsorship.FavoriteClient) error {
	model := mappers.FavoriteClientToModel(client)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create favorite client: %w", err)
	}

	client.SetID(model.ID)

	return nil
}

func (r *FavoriteClientRepository) Update(ctx context.Context, client *sponsorship.FavoriteClient) error {
	model := mappers.FavoriteClientToModel(client)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.FavoriteClientModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"client_name":             model.ClientName,
			"gas_sponsorship_enabled": model.GasSponsorshipEnabled,
			"max_gas_per_tx":          model.MaxGasPerTx,
			"invoice_count":           model.InvoiceCount,
			"total_amount_paid":       model.TotalAmountPaid,
			"first_invoice_at":        model.FirstInvoiceAt,
			"last_invoice_at":         model.LastInvoiceAt,
			"sponsored_tx_count":      model.SponsoredTxCount,
			"total_gas_sponsored":     model.TotalGasSponsored,
			"updated_at":              model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update favorite client: %w", result.Error)
	}

	return nil
}

func (r *FavoriteClientRepository) GetByPayeeAndEmail(ctx context.Context, payeeAddress, clientEmail string) (*sponsorship.FavoriteClient, error) {
	var model models.FavoriteClientModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("payee_address = ? AND client_email = ?", payeeAddress, clientEmail).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get favorite client: %w", err)
	}

	return mappers.FavoriteClientToDomain(&model), nil
}

func (r *FavoriteClientRepository) ListByPayee(ctx context.Context, payeeAddress string) ([]*sponsorship.FavoriteClient, error) {
	var clientModels []models.FavoriteClientModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("payee_address = ?", payeeAddress).
		Order("total_amount_paid DESC").
		Find(&clientModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorite clients: %w", err)
	}

	clients := make([]*sponsorship.FavoriteClient, len(clientModels))
	for i, model := range clientModels {
		clients[i] = mappers.FavoriteClientToDomain(&model)
	}

	return clients, nil
}
