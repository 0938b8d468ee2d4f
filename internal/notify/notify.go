package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"driwich/internal/domain"
)

// Notifier delivers a user-visible notification. Implementations must not
// fail the action that produced the notification.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// New stamps a notification with an id and time.
func New(title, description string, variant domain.NotificationVariant) domain.Notification {
	return domain.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Variant:     variant,
		CreatedAt:   time.Now().UTC(),
	}
}

func Info(title, description string) domain.Notification {
	return New(title, description, domain.NotificationDefault)
}

func Error(title, description string) domain.Notification {
	return New(title, description, domain.NotificationDestructive)
}

// Feed keeps the most recent notifications, newest first, until dismissed.
type Feed struct {
	mu     sync.Mutex
	items  []domain.Notification
	limit  int
	logger *zap.Logger
}

func NewFeed(limit int, logger *zap.Logger) *Feed {
	if limit <= 0 {
		limit = 50
	}
	return &Feed{limit: limit, logger: logger}
}

func (f *Feed) Notify(_ context.Context, n domain.Notification) {
	f.logger.Info("notification",
		zap.String("id", n.ID),
		zap.String("title", n.Title),
		zap.String("description", n.Description),
		zap.String("variant", string(n.Variant)),
	)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]domain.Notification{n}, f.items...)
	if len(f.items) > f.limit {
		f.items = f.items[:f.limit]
	}
}

func (f *Feed) List() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]domain.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Dismiss removes a notification. It reports whether the id was present.
func (f *Feed) Dismiss(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

// Multi fans a notification out to several notifiers in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n domain.Notification) {
	for _, notifier := range m {
		notifier.Notify(ctx, n)
	}
}
