package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/waveline-inc/waveline/internal/domain/reminder"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/mappers"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
	"github.com/waveline-inc/waveline/internal/shared/db"
)

type ReminderPreferencesRepository struct {
	db *gorm.DB
}

func NewReminderPreferencesRepository(db *gorm.DB) *ReminderPreferencesRepository {
	return &ReminderPreferencesRepository{db: db}
}

func (r *ReminderPreferencesRepository) GetByPayeeAddress(ctx context.Context, payeeAddress string) (*reminder.Preferences, error) {
	var model models.ReminderPreferencesModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("payee_address = ?", payeeAddress).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reminder preferences: %w", err)
	}

	return mappers.ReminderPreferencesToDomain(&model)
}

func (r *ReminderPreferencesRepository) Upsert(ctx context.Context, prefs *reminder.Preferences) error {
	model, err := mappers.ReminderPreferencesToModel(prefs)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payee_address"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "excluded_clients", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to upsert reminder preferences: %w", err)
	}

	prefs.SetID(model.ID)

	return nil
}
