package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/waveline-inc/waveline/internal/domain/notification"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/mappers"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
	"github.com/waveline-inc/waveline/internal/shared/db"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := mappers.NotificationToModel(n)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	n.SetID(model.ID)

	return nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientAddress string, page, pageSize int) ([]*notification.Notification, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("recipient_address = ?", recipientAddress)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notificationModels []models.NotificationModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(notificationModels))
	for i, model := range notificationModels {
		notifications[i] = mappers.NotificationToDomain(&model)
	}

	return notifications, total, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true).Error; err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
