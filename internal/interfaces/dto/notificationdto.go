package dto

import (
	"time"

	domain "github.com/waveline-inc/waveline/internal/domain/notification"
)

type NotificationResponse struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationsToResponses(notifications []*domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID(),
			Type:      string(n.Type()),
			Title:     n.Title(),
			Message:   n.Message(),
			Read:      n.IsRead(),
			CreatedAt: n.CreatedAt(),
		})
	}
	return out
}
