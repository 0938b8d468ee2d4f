package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"driwich/internal/domain"
)

type Publisher interface {
	PublishJSON(ctx context.Context, key string, payload any) error
}

type event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StreamNotifier mirrors notifications onto an event stream. Publish
// failures are logged and dropped.
type StreamNotifier struct {
	publisher Publisher
	logger    *zap.Logger
	timeout   time.Duration
}

func NewStreamNotifier(publisher Publisher, logger *zap.Logger) *StreamNotifier {
	return &StreamNotifier{
		publisher: publisher,
		logger:    logger,
		timeout:   5 * time.Second,
	}
}

func (s *StreamNotifier) Notify(ctx context.Context, n domain.Notification) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	err := s.publisher.PublishJSON(ctx, n.ID, event{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Variant:     string(n.Variant),
		CreatedAt:   n.CreatedAt,
	})
	if err != nil {
		s.logger.Warn("publishing notification failed", zap.String("id", n.ID), zap.Error(err))
	}
}
