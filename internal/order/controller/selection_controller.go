package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"driwich/internal/commons"
	"driwich/internal/domain"
	"driwich/internal/dto"
	apperrors "driwich/internal/errors"
)

type SelectionUseCase interface {
	AddItem(ctx context.Context, productID int) ([]domain.MenuItem, error)
	RemoveItem(ctx context.Context, index int) ([]domain.MenuItem, error)
	Items() []domain.MenuItem
	Clear()
}

type SelectionController struct {
	useCase SelectionUseCase
	logger  *zap.Logger
}

func NewSelectionController(useCase SelectionUseCase, logger *zap.Logger) *SelectionController {
	return &SelectionController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *SelectionController) RegisterRoutes(r chi.Router) {
	r.Get("/", c.Get)
	r.Delete("/", c.Clear)
	r.Post("/items", c.AddItem)
	r.Delete("/items/{index}", c.RemoveItem)
}

func (c *SelectionController) Get(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))
	commons.WriteJSON(w, http.StatusOK, dto.ToSelectionResponse(c.useCase.Items()), logger)
}

func (c *SelectionController) Clear(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", uuid.New().String()))

	c.useCase.Clear()
	logger.Debug("selection cleared")
	commons.WriteJSON(w, http.StatusOK, dto.ToSelectionResponse(nil), logger)
}

func (c *SelectionController) AddItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.AddSelectionItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteValidationError(w, traceID, "invalid JSON body", logger, apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ProductID <= 0 {
		commons.WriteValidationError(w, traceID, "validation failed", logger, apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return
	}

	items, err := c.useCase.AddItem(r.Context(), req.ProductID)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.ToSelectionResponse(items), logger)
}

func (c *SelectionController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		commons.WriteValidationError(w, traceID, "invalid index", logger, apperrors.ValidationDetail{
			Field:   "index",
			Message: "index must be an integer",
		})
		return
	}

	items, err := c.useCase.RemoveItem(r.Context(), index)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.ToSelectionResponse(items), logger)
}
