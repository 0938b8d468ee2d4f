package dto

import (
	"time"

	"driwich/internal/domain"
)

type NotificationDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
}

func ToNotificationDTOs(notifications []domain.Notification) []NotificationDTO {
	out := make([]NotificationDTO, len(notifications))
	for i, n := range notifications {
		out[i] = NotificationDTO{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Variant:     string(n.Variant),
			CreatedAt:   n.CreatedAt,
		}
	}
	return out
}
