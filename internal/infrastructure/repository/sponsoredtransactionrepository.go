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

type SponsoredTransactionRepository struct {
	db *gorm.DB
}

func NewSponsoredTransactionRepository(db *gorm.DB) *SponsoredTransactionRepository {
	return &SponsoredTransactionRepository{db: db}
}

func (r *SponsoredTransactionRepository) Create(ctx context.Context, tx *sponsorship.SponsoredTransaction) error {
	model := mappers.SponsoredTransactionToModel(tx)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create sponsored transaction: %w", err)
	}

	tx.SetID(model.ID)

	return nil
}

func (r *SponsoredTransactionRepository) ListByPayee(ctx context.Context, payeeAddress string, page, pageSize int) ([]*sponsorship.SponsoredTransaction, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.SponsoredTransactionModel{}).
		Where("payee_address = ?", payeeAddress)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sponsored transactions: %w", err)
	}

	var txModels []models.SponsoredTransactionModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&txModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list sponsored transactions: %w", err)
	}

	txs := make([]*sponsorship.SponsoredTransaction, len(txModels))
	for i, model := range txModels {
		tx, err := mappers.SponsoredTransactionToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		txs[i] = tx
	}

	return txs, total, nil
}
