package mappers

import (
	"github.com/waveline-inc/waveline/internal/domain/notification"
	"github.com/waveline-inc/waveline/internal/infrastructure/persistence/models"
)

func NotificationToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:               n.ID(),
		RecipientAddress: n.RecipientAddress(),
		Type:             string(n.Type()),
		Title:            n.Title(),
		Message:          n.Message(),
		Read:             n.IsRead(),
		CreatedAt:        n.CreatedAt(),
	}
}

func NotificationToDomain(model *models.NotificationModel) *notification.Notification {
	return notification.ReconstructNotification(
		model.ID,
		model.RecipientAddress,
		notification.NotificationType(model.Type),
		model.Title,
		model.Message,
		model.Read,
		model.CreatedAt,
	)
}
