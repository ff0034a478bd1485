package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/waveline-inc/waveline/internal/domain/referral"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/mappers"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
	"github.com/waveline-inc/waveline/internal/shared/db"
)

type ReferralProgramRepository struct {
	db *gorm.DB
}

func NewReferralProgramRepository(db *gorm.DB) *ReferralProgramRepository {
	return &ReferralProgramRepository{db: db}
}

func (r *ReferralProgramRepository) Create(ctx context.Context, program *referral.Program) error {
	model := mappers.ReferralProgramToModel(program)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create referral program: %w", err)
	}

	program.SetID(model.ID)

	return nil
}

func (r *ReferralProgramRepository) Update(ctx context.Context, program *referral.Program) error {
	model := mappers.ReferralProgramToModel(program)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReferralProgramModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"total_referrals":       model.TotalReferrals,
			"total_rewards_earned":  model.TotalRewardsEarned,
			"total_rewards_claimed": model.TotalRewardsClaimed,
			"pending_rewards":       model.PendingRewards,
			"is_active":             model.IsActive,
			"updated_at":            model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update referral program: %w", result.Error)
	}

	return nil
}

func (r *ReferralProgramRepository) GetByReferrerAddress(ctx context.Context, referrerAddress string) (*referral.Program, error) {
	var model models.ReferralProgramModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("referrer_address = ?", referrerAddress).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referral program: %w", err)
	}

	return mappers.ReferralProgramToDomain(&model), nil
}

func (r *ReferralProgramRepository) GetByCode(ctx context.Context, code string) (*referral.Program, error) {
	var model models.ReferralProgramModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referral program by code: %w", err)
	}

	return mappers.ReferralProgramToDomain(&model), nil
}
