package notify

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"driwich/internal/commons"
	"driwich/internal/domain"
	"driwich/internal/dto"
	apperrors "driwich/internal/errors"
)

type FeedService interface {
	List() []domain.Notification
	Dismiss(id string) bool
}

type Controller struct {
	feed   FeedService
	logger *zap.Logger
}

func NewController(feed FeedService, logger *zap.Logger) *Controller {
	return &Controller{
		feed:   feed,
		logger: logger,
	}
}

func (c *Controller) RegisterRoutes(r chi.Router) {
	r.Get("/", c.List)
	r.Delete("/{notificationId}", c.Dismiss)
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))
	commons.WriteJSON(w, http.StatusOK, dto.ListNotificationsResponse{
		Notifications: dto.ToNotificationDTOs(c.feed.List()),
	}, logger)
}

func (c *Controller) Dismiss(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id := chi.URLParam(r, "notificationId")
	if !c.feed.Dismiss(id) {
		commons.HandleError(w, traceID, apperrors.NewNotFoundError(fmt.Sprintf("notification %s not found", id)), logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
