package domain

import "time"

type NotificationVariant string

const (
	NotificationDefault     NotificationVariant = "default"
	NotificationDestructive NotificationVariant = "destructive"
)

type Notification struct {
	ID          string
	Title       string
	Description string
	Variant     NotificationVariant
	CreatedAt   time.Time
}
