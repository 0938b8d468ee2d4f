package product

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"driwich/internal/commons"
	"driwich/internal/domain"
	apperrors "driwich/internal/errors"
)

type Controller struct {
	catalog CatalogService
	logger  *zap.Logger
}

func NewController(catalog CatalogService, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

func (c *Controller) RegisterRoutes(r chi.Router) {
	r.Get("/", c.HandleList)
	r.Post("/", c.HandleCreate)
	r.Put("/{productId}", c.HandleUpdate)
	r.Delete("/{productId}", c.HandleDelete)
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order := ListOrder(r.URL.Query().Get("order"))
	if order == "" {
		order = OrderByCategory
	}
	if order != OrderByCategory && order != OrderByCreated {
		commons.WriteValidationError(w, traceID, "invalid order", logger, apperrors.ValidationDetail{
			Field:   "order",
			Message: "order must be one of category, created",
		})
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		if err := c.catalog.Reload(r.Context()); err != nil {
			commons.HandleError(w, traceID, err, logger)
			return
		}
	}

	items := c.catalog.List(order)
	products := make([]ProductDTO, 0, len(items))
	for _, item := range items {
		products = append(products, ToDTO(item))
	}

	commons.WriteJSON(w, http.StatusOK, ListProductsResponse{Products: products}, logger)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	input, ok := c.decodeInput(w, r, traceID, logger)
	if !ok {
		return
	}

	item, err := c.catalog.Create(r.Context(), input)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	logger.Info("product created", zap.Int("productId", item.ID))
	commons.WriteJSON(w, http.StatusCreated, ToDTO(item), logger)
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, traceID, logger)
	if !ok {
		return
	}

	input, ok := c.decodeInput(w, r, traceID, logger)
	if !ok {
		return
	}

	item, err := c.catalog.Update(r.Context(), id, input)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	logger.Info("product updated", zap.Int("productId", item.ID))
	commons.WriteJSON(w, http.StatusOK, ToDTO(item), logger)
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseID(w, r, traceID, logger)
	if !ok {
		return
	}

	if err := c.catalog.Delete(r.Context(), id); err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	logger.Info("product deleted", zap.Int("productId", id))
	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) parseID(w http.ResponseWriter, r *http.Request, traceID string, logger *zap.Logger) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil || id <= 0 {
		logger.Warn("invalid productId in path", zap.String("productId", chi.URLParam(r, "productId")))
		commons.WriteValidationError(w, traceID, "invalid productId", logger, apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func (c *Controller) decodeInput(w http.ResponseWriter, r *http.Request, traceID string, logger *zap.Logger) (Input, bool) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteValidationError(w, traceID, "invalid JSON body", logger, apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return Input{}, false
	}

	input, err := validateProductRequest(req)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		commons.WriteValidationError(w, traceID, ve.Message, logger, ve.Details...)
		return Input{}, false
	}

	return input, true
}

func validateProductRequest(req ProductRequest) (Input, error) {
	var details []apperrors.ValidationDetail

	name := strings.TrimSpace(req.Name)
	if name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if req.Price == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price is required",
		})
	} else if req.Price.IsNegative() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	category := domain.Category(req.Category)
	if category == "" {
		category = domain.CategorySavory
	}
	if !category.Valid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "category",
			Message: "category must be one of sweet, savory",
		})
	}

	if len(details) > 0 {
		return Input{}, apperrors.NewValidationError("please fill in all fields", details...)
	}

	return Input{Name: name, Price: req.Price.Round(2), Category: category}, nil
}
