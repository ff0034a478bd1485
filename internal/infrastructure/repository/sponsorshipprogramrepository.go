package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/waveline-inc/waveline/internal/domain/sponsorship"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/mappers"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
	"github.com/waveline-inc/waveline/internal/shared/db"
	"github.com/waveline-inc/waveline/internal/shared/errors"
)

type SponsorshipProgramRepository struct {
	db *gorm.DB
}

func NewSponsorshipProgramRepository(db *gorm.DB) *SponsorshipProgramRepository {
	return &SponsorshipProgramRepository{db: db}
}

func (r *SponsorshipProgramRepository) Create(ctx context.Context, program *sponsorship.Program) error {
	model := mappers.SponsorshipProgramToModel(program)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create sponsorship program: %w", err)
	}

	program.SetID(model.ID)

	return nil
}

// Update writes the program guarded by its version column. Domain mutations
// bump the version, so the row must still hold the previous value; zero rows
// affected means a concurrent writer won and the caller must re-read.
func (r *SponsorshipProgramRepository) Update(ctx context.Context, program *sponsorship.Program) error {
	model := mappers.SponsorshipProgramToModel(program)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SponsorshipProgramModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"total_budget":           model.TotalBudget,
			"remaining_budget":       model.RemainingBudget,
			"max_gas_per_tx":         model.MaxGasPerTx,
			"is_active":              model.IsActive,
			"sponsored_tx_count":     model.SponsoredTxCount,
			"total_sponsored_amount": model.TotalSponsoredAmount,
			"version":                model.Version,
			"updated_at":             model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update sponsorship program: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("sponsorship program was modified concurrently")
	}

	return nil
}

func (r *SponsorshipProgramRepository) GetByPayeeAddress(ctx context.Context, payeeAddress string) (*sponsorship.Program, error) {
	var model models.SponsorshipProgramModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("payee_address = ?", payeeAddress).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sponsorship program: %w", err)
	}

	return mappers.SponsorshipProgramToDomain(&model), nil
}

func (r *SponsorshipProgramRepository) ListActivePayeeAddresses(ctx context.Context, limit int) ([]string, error) {
	var addresses []string

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SponsorshipProgramModel{}).
		Where("is_active = ?", true).
		Limit(limit).
		Pluck("payee_address", &addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list active sponsorship payees: %w", err)
	}

	return addresses, nil
}
