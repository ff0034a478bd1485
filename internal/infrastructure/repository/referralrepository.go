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

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

func (r *ReferralRepository) Create(ctx context.Context, rec *referral.Referral) error {
	model := mappers.ReferralToModel(rec)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create referral: %w", err)
	}

	rec.SetID(model.ID)

	return nil
}

func (r *ReferralRepository) Update(ctx context.Context, rec *referral.Referral) error {
	model := mappers.ReferralToModel(rec)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReferralModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":       model.Status,
			"completed_at": model.CompletedAt,
			"updated_at":   model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update referral: %w", result.Error)
	}

	return nil
}

func (r *ReferralRepository) GetByRefereeAddress(ctx context.Context, refereeAddress string) (*referral.Referral, error) {
	var model models.ReferralModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("referee_address = ?", refereeAddress).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get referral: %w", err)
	}

	return mappers.ReferralToDomain(&model)
}

func (r *ReferralRepository) ListPendingByReferee(ctx context.Context, refereeAddress string) ([]*referral.Referral, error) {
	return r.list(ctx, "referee_address = ? AND status = ?", refereeAddress, referral.ReferralStatusPending)
}

func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerAddress string) ([]*referral.Referral, error) {
	return r.list(ctx, "referrer_address = ?", referrerAddress)
}

func (r *ReferralRepository) CountCompletedByReferrer(ctx context.Context, referrerAddress string) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReferralModel{}).
		Where("referrer_address = ? AND status IN ?", referrerAddress,
			[]string{string(referral.ReferralStatusCompleted), string(referral.ReferralStatusRewarded)}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count completed referrals: %w", err)
	}

	return count, nil
}

func (r *ReferralRepository) ListPendingRefereeAddresses(ctx context.Context, limit int) ([]string, error) {
	var addresses []string

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ReferralModel{}).
		Distinct("referee_address").
		Where("status = ?", referral.ReferralStatusPending)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Pluck("referee_address", &addresses).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending referee addresses: %w", err)
	}

	return addresses, nil
}

func (r *ReferralRepository) list(ctx context.Context, cond string, args ...interface{}) ([]*referral.Referral, error) {
	var referralModels []models.ReferralModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where(cond, args...).
		Order("created_at DESC").
		Find(&referralModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list referrals: %w", err)
	}

	referrals := make([]*referral.Referral, len(referralModels))
	for i, model := range referralModels {
		rec, err := mappers.ReferralToDomain(&model)
		if err != nil {
			return nil, err
		}
		referrals[i] = rec
	}

	return referrals, nil
}
