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

type RewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

func (r *RewardRepository) Create(ctx context.Context, reward *referral.Reward) error {
	model := mappers.RewardToModel(reward)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}

	reward.SetID(model.ID)

	return nil
}

func (r *RewardRepository) Update(ctx context.Context, reward *referral.Reward) error {
	model := mappers.RewardToModel(reward)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReferralRewardModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"claimed_at": model.ClaimedAt,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update reward: %w", result.Error)
	}

	return nil
}

func (r *RewardRepository) GetByReferralID(ctx context.Context, referralID uint) (*referral.Reward, error) {
	var model models.ReferralRewardModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("referral_id = ?", referralID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}

	return mappers.RewardToDomain(&model)
}

func (r *RewardRepository) ListByReferrer(ctx context.Context, referrerAddress string) ([]*referral.Reward, error) {
	return r.list(ctx, "referrer_address = ?", referrerAddress)
}

func (r *RewardRepository) ListPendingByReferrer(ctx context.Context, referrerAddress string) ([]*referral.Reward, error) {
	return r.list(ctx, "referrer_address = ? AND status = ?", referrerAddress, referral.RewardStatusPending)
}

func (r *RewardRepository) list(ctx context.Context, cond string, args ...interface{}) ([]*referral.Reward, error) {
	var rewardModels []models.ReferralRewardModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where(cond, args...).
		Order("created_at DESC").
		Find(&rewardModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	rewards := make([]*referral.Reward, len(rewardModels))
	for i, model := range rewardModels {
		reward, err := mappers.RewardToDomain(&model)
		if err != nil {
			return nil, err
		}
		rewards[i] = reward
	}

	return rewards, nil
}
