package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"driwich/internal/domain"
	apperrors "driwich/internal/errors"
	"driwich/internal/order/repository"
)

// Mock implementations
type mockTicketService struct {
	PrintFunc func(ctx context.Context, order domain.Order) error
	TextFunc  func(order domain.Order) string
	printed   []uint
}

func (m *mockTicketService) Print(ctx context.Context, order domain.Order) error {
	m.printed = append(m.printed, order.OrderNumber)
	if m.PrintFunc == nil {
		return nil
	}
	return m.PrintFunc(ctx, order)
}

func (m *mockTicketService) Text(order domain.Order) string {
	return m.TextFunc(order)
}

type recordingNotifier struct {
	items []domain.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, notification domain.Notification) {
	n.items = append(n.items, notification)
}

type countingRecorder struct {
	created  int
	advanced map[string]int
}

func (r *countingRecorder) OrderCreated() { r.created++ }

func (r *countingRecorder) StatusAdvanced(status string) {
	if r.advanced == nil {
		r.advanced = map[string]int{}
	}
	r.advanced[status]++
}

type fixture struct {
	uc        *OrderUseCase
	orders    *repository.MemoryOrderRepository
	selection *repository.MemorySelectionRepository
	tickets   *mockTicketService
	notifier  *recordingNotifier
	recorder  *countingRecorder
}

func newFixture() *fixture {
	f := &fixture{
		orders:    repository.NewMemoryOrderRepository(),
		selection: repository.NewMemorySelectionRepository(),
		tickets:   &mockTicketService{},
		notifier:  &recordingNotifier{},
		recorder:  &countingRecorder{},
	}
	f.uc = NewOrderUseCase(f.orders, f.selection, f.tickets, f.notifier, f.recorder, zap.NewNop())
	f.uc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC) }
	return f
}

func menuItem(id int, name, price string) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: name, Price: decimal.RequireFromString(price), Category: domain.CategorySweet}
}

func TestCreateOrder_EmptySelection(t *testing.T) {
	f := newFixture()

	result, err := f.uc.CreateOrder(context.Background())

	assert.Nil(t, result)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "items", ve.Details[0].Field)
	assert.Equal(t, "items must not be empty", ve.Details[0].Message)
	assert.Empty(t, f.orders.FindAll())
	assert.Empty(t, f.tickets.printed)
	assert.Empty(t, f.notifier.items)
	assert.Equal(t, 0, f.recorder.created)
}

func TestCreateOrder_EndToEnd(t *testing.T) {
	f := newFixture()
	f.orders.Create([]domain.MenuItem{menuItem(9, "Earlier", "4.00")}, time.Now())
	f.selection.Add(menuItem(1, "A", "1.00"))
	f.selection.Add(menuItem(2, "B", "2.50"))

	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)

	order := result.Order
	assert.True(t, decimal.RequireFromString("3.50").Equal(order.TotalAmount))
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, uint(2), order.OrderNumber)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC), order.CreatedAt)
	assert.True(t, result.Printed)

	all := f.uc.ListOrders()
	require.Len(t, all, 2)
	assert.Equal(t, order.ID, all[0].ID)

	assert.Empty(t, f.selection.Items())
	assert.Equal(t, []uint{2}, f.tickets.printed)
	assert.Equal(t, 1, f.recorder.created)

	require.Len(t, f.notifier.items, 1)
	assert.Equal(t, "Order Created", f.notifier.items[0].Title)
	assert.Equal(t, "Order #2 has been created and sent to printer", f.notifier.items[0].Description)
}

func TestCreateOrder_OrderNumberIncrementsByOne(t *testing.T) {
	f := newFixture()

	var numbers []uint
	for i := 0; i < 3; i++ {
		f.selection.Add(menuItem(1, "A", "1.00"))
		result, err := f.uc.CreateOrder(context.Background())
		require.NoError(t, err)
		numbers = append(numbers, result.Order.OrderNumber)
	}

	_, err := f.uc.CreateOrder(context.Background())
	require.Error(t, err)

	f.selection.Add(menuItem(1, "A", "1.00"))
	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)
	numbers = append(numbers, result.Order.OrderNumber)

	assert.Equal(t, []uint{1, 2, 3, 4}, numbers)
}

func TestCreateOrder_PrintFailureKeepsOrder(t *testing.T) {
	f := newFixture()
	f.tickets.PrintFunc = func(ctx context.Context, order domain.Order) error {
		return apperrors.NewPrintError("could not prepare print document", errors.New("no surface"))
	}
	f.selection.Add(menuItem(1, "A", "1.00"))

	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)

	assert.False(t, result.Printed)
	assert.Equal(t, "could not prepare print document", result.PrintError)

	got, err := f.uc.GetOrder(result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, got.Status)
	assert.Empty(t, f.selection.Items())
}

func TestCreateOrder_SelectionIsSnapshotted(t *testing.T) {
	f := newFixture()
	f.selection.Add(menuItem(1, "A", "1.00"))

	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)

	f.selection.Add(menuItem(2, "B", "2.50"))
	got, err := f.uc.GetOrder(result.Order.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.True(t, decimal.RequireFromString("1.00").Equal(got.TotalAmount))
}

func TestAdvanceStatus(t *testing.T) {
	f := newFixture()
	f.selection.Add(menuItem(1, "A", "1.00"))
	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)
	f.notifier.items = nil

	for _, want := range []domain.OrderStatus{domain.OrderStatusPreparing, domain.OrderStatusReady, domain.OrderStatusCompleted} {
		order, err := f.uc.AdvanceStatus(context.Background(), result.Order.ID)
		require.NoError(t, err)
		assert.Equal(t, want, order.Status)
	}

	require.Len(t, f.notifier.items, 3)
	assert.Equal(t, "Order Updated", f.notifier.items[0].Title)
	assert.Equal(t, "Order #1 status changed to preparing", f.notifier.items[0].Description)
	assert.Equal(t, "Order #1 status changed to completed", f.notifier.items[2].Description)
	assert.Equal(t, 1, f.recorder.advanced["ready"])
}

func TestAdvanceStatus_CompletedIsNoOp(t *testing.T) {
	f := newFixture()
	f.selection.Add(menuItem(1, "A", "1.00"))
	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := f.uc.AdvanceStatus(context.Background(), result.Order.ID)
		require.NoError(t, err)
	}
	notified := len(f.notifier.items)

	order, err := f.uc.AdvanceStatus(context.Background(), result.Order.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Len(t, f.notifier.items, notified)
}

func TestAdvanceStatus_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.AdvanceStatus(context.Background(), 42)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Empty(t, f.notifier.items)
}

func TestPrintOrder_Reprint(t *testing.T) {
	f := newFixture()
	f.selection.Add(menuItem(1, "A", "1.00"))
	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)

	_, err = f.uc.PrintOrder(context.Background(), result.Order.ID)

	require.NoError(t, err)
	assert.Equal(t, []uint{1, 1}, f.tickets.printed)
}

func TestPrintOrder_Failure(t *testing.T) {
	f := newFixture()
	f.selection.Add(menuItem(1, "A", "1.00"))
	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)
	f.tickets.PrintFunc = func(ctx context.Context, order domain.Order) error {
		return apperrors.NewPrintError("print request failed", errors.New("exit status 1"))
	}

	order, err := f.uc.PrintOrder(context.Background(), result.Order.ID)

	_, ok := apperrors.IsPrintError(err)
	assert.True(t, ok)
	assert.Equal(t, result.Order.ID, order.ID)
}

func TestPrintOrder_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.PrintOrder(context.Background(), 3)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Empty(t, f.tickets.printed)
}

func TestTicketText(t *testing.T) {
	f := newFixture()
	f.tickets.TextFunc = func(order domain.Order) string { return "ORDER #001" }
	f.selection.Add(menuItem(1, "A", "1.00"))
	result, err := f.uc.CreateOrder(context.Background())
	require.NoError(t, err)

	text, err := f.uc.TicketText(result.Order.ID)

	require.NoError(t, err)
	assert.Equal(t, "ORDER #001", text)
}
