package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/waveline-inc/waveline/internal/domain/reminder"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/mappers"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
	"github.com/waveline-inc/waveline/internal/shared/db"
)

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, rem *reminder.Reminder) error {
	model := mappers.ReminderToModel(rem)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create payment reminder: %w", err)
	}

	rem.SetID(model.ID)

	return nil
}

func (r *ReminderRepository) ExistsForStage(ctx context.Context, invoiceID uint, stage reminder.Stage) (bool, error) {
	var count int64

	// manual sends do not consume the automatic stage
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.PaymentReminderModel{}).
		Where("invoice_id = ? AND stage = ? AND manual = ?", invoiceID, stage.String(), false).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check reminder stage: %w", err)
	}

	return count > 0, nil
}

func (r *ReminderRepository) ListByInvoiceID(ctx context.Context, invoiceID uint) ([]*reminder.Reminder, error) {
	var reminderModels []models.PaymentReminderModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("invoice_id = ?", invoiceID).
		Order("sent_at DESC").
		Find(&reminderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment reminders: %w", err)
	}

	reminders := make([]*reminder.Reminder, len(reminderModels))
	for i, model := range reminderModels {
		rem, err := mappers.ReminderToDomain(&model)
		if err != nil {
			return nil, err
		}
		reminders[i] = rem
	}

	return reminders, nil
}
