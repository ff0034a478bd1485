package notification

import "context"

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientAddress string, page, pageSize int) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, id uint) error
}
