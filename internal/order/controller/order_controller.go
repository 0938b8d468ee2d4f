package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"driwich/internal/commons"
	"driwich/internal/domain"
	"driwich/internal/dto"
	apperrors "driwich/internal/errors"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context) (*dto.CreateOrderResult, error)
	AdvanceStatus(ctx context.Context, id uint) (domain.Order, error)
	PrintOrder(ctx context.Context, id uint) (domain.Order, error)
	ListOrders() []domain.Order
	GetOrder(id uint) (domain.Order, error)
	TicketText(id uint) (string, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) RegisterRoutes(r chi.Router) {
	r.Post("/", c.Create)
	r.Get("/", c.List)
	r.Get("/{orderId}", c.Get)
	r.Post("/{orderId}/advance", c.Advance)
	r.Post("/{orderId}/print", c.Print)
	r.Get("/{orderId}/ticket", c.Ticket)
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	result, err := c.useCase.CreateOrder(r.Context())
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		TraceID:    traceID,
		Order:      dto.ToOrderDTO(result.Order),
		Printed:    result.Printed,
		PrintError: result.PrintError,
		Timestamp:  time.Now().UTC(),
	}, logger)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orders := c.useCase.ListOrders()
	resp := dto.ListOrdersResponse{Orders: make([]dto.OrderDTO, len(orders))}
	for i, order := range orders {
		resp.Orders[i] = dto.ToOrderDTO(order)
	}

	commons.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseOrderID(w, r, traceID, logger)
	if !ok {
		return
	}

	order, err := c.useCase.GetOrder(id)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.ToOrderDTO(order), logger)
}

func (c *OrderController) Advance(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseOrderID(w, r, traceID, logger)
	if !ok {
		return
	}

	order, err := c.useCase.AdvanceStatus(r.Context(), id)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.ToOrderDTO(order), logger)
}

func (c *OrderController) Print(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseOrderID(w, r, traceID, logger)
	if !ok {
		return
	}

	order, err := c.useCase.PrintOrder(r.Context(), id)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, dto.PrintOrderResponse{
		TraceID:     traceID,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Printed:     true,
		Timestamp:   time.Now().UTC(),
	}, logger)
}

func (c *OrderController) Ticket(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.parseOrderID(w, r, traceID, logger)
	if !ok {
		return
	}

	text, err := c.useCase.TicketText(id)
	if err != nil {
		commons.HandleError(w, traceID, err, logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		logger.Error("failed to write ticket", zap.Error(err))
	}
}

func (c *OrderController) parseOrderID(w http.ResponseWriter, r *http.Request, traceID string, logger *zap.Logger) (uint, bool) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		commons.WriteValidationError(w, traceID, "invalid orderId", logger, apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(orderID), true
}
