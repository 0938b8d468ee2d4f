package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"driwich/internal/domain"
	"driwich/internal/dto"
	apperrors "driwich/internal/errors"
	"driwich/internal/notify"
)

type OrderRepository interface {
	Create(items []domain.MenuItem, createdAt time.Time) domain.Order
	FindAll() []domain.Order
	FindByID(id uint) (domain.Order, error)
	Advance(id uint) (domain.Order, bool, error)
}

type SelectionRepository interface {
	Add(item domain.MenuItem) []domain.MenuItem
	Remove(index int) ([]domain.MenuItem, error)
	Items() []domain.MenuItem
	Drain() []domain.MenuItem
	Clear()
}

type TicketService interface {
	Print(ctx context.Context, order domain.Order) error
	Text(order domain.Order) string
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type Recorder interface {
	OrderCreated()
	StatusAdvanced(status string)
}

type OrderUseCase struct {
	orderRepo     OrderRepository
	selectionRepo SelectionRepository
	tickets       TicketService
	notifier      Notifier
	recorder      Recorder
	logger        *zap.Logger
	now           func() time.Time
}

func NewOrderUseCase(
	orderRepo OrderRepository,
	selectionRepo SelectionRepository,
	tickets TicketService,
	notifier Notifier,
	recorder Recorder,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		selectionRepo: selectionRepo,
		tickets:       tickets,
		notifier:      notifier,
		recorder:      recorder,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateOrder turns the current selection into a pending order, clears the
// selection and prints the ticket. A print failure is reported in the
// result; the order is kept either way.
func (uc *OrderUseCase) CreateOrder(ctx context.Context) (*dto.CreateOrderResult, error) {
	items := uc.selectionRepo.Drain()
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("cannot create an empty order", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	order := uc.orderRepo.Create(items, uc.now())
	uc.recorder.OrderCreated()
	uc.logger.Info("order created",
		zap.Uint("orderId", order.ID),
		zap.Uint("orderNumber", order.OrderNumber),
		zap.Int("itemCount", len(order.Items)),
		zap.String("totalAmount", order.TotalAmount.StringFixed(2)),
	)

	result := &dto.CreateOrderResult{Order: order, Printed: true}
	if err := uc.tickets.Print(ctx, order); err != nil {
		result.Printed = false
		result.PrintError = printMessage(err)
	}

	uc.notifier.Notify(ctx, notify.Info(
		"Order Created",
		fmt.Sprintf("Order #%d has been created and sent to printer", order.OrderNumber),
	))

	return result, nil
}

// AdvanceStatus moves an order to the next status. Completed orders are
// returned unchanged and produce no notification.
func (uc *OrderUseCase) AdvanceStatus(ctx context.Context, id uint) (domain.Order, error) {
	order, changed, err := uc.orderRepo.Advance(id)
	if err != nil {
		return domain.Order{}, err
	}

	if !changed {
		uc.logger.Debug("order already completed", zap.Uint("orderId", id))
		return order, nil
	}

	uc.recorder.StatusAdvanced(string(order.Status))
	uc.logger.Info("order status advanced", zap.Uint("orderId", id), zap.String("status", string(order.Status)))
	uc.notifier.Notify(ctx, notify.Info(
		"Order Updated",
		fmt.Sprintf("Order #%d status changed to %s", order.OrderNumber, order.Status),
	))

	return order, nil
}

// PrintOrder sends the ticket of an existing order to the printer again.
func (uc *OrderUseCase) PrintOrder(ctx context.Context, id uint) (domain.Order, error) {
	order, err := uc.orderRepo.FindByID(id)
	if err != nil {
		return domain.Order{}, err
	}

	if err := uc.tickets.Print(ctx, order); err != nil {
		return order, err
	}

	uc.logger.Info("ticket reprinted", zap.Uint("orderId", id), zap.Uint("orderNumber", order.OrderNumber))
	return order, nil
}

func (uc *OrderUseCase) ListOrders() []domain.Order {
	return uc.orderRepo.FindAll()
}

func (uc *OrderUseCase) GetOrder(id uint) (domain.Order, error) {
	return uc.orderRepo.FindByID(id)
}

func (uc *OrderUseCase) TicketText(id uint) (string, error) {
	order, err := uc.orderRepo.FindByID(id)
	if err != nil {
		return "", err
	}
	return uc.tickets.Text(order), nil
}

func printMessage(err error) string {
	if pe, ok := apperrors.IsPrintError(err); ok {
		return pe.Message
	}
	return err.Error()
}
