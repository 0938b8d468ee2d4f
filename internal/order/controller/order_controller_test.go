package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"driwich/internal/commons"
	"driwich/internal/domain"
	"driwich/internal/dto"
	apperrors "driwich/internal/errors"
)

// Mock implementations
type mockOrderUseCase struct {
	CreateOrderFunc   func(ctx context.Context) (*dto.CreateOrderResult, error)
	AdvanceStatusFunc func(ctx context.Context, id uint) (domain.Order, error)
	PrintOrderFunc    func(ctx context.Context, id uint) (domain.Order, error)
	ListOrdersFunc    func() []domain.Order
	GetOrderFunc      func(id uint) (domain.Order, error)
	TicketTextFunc    func(id uint) (string, error)
}

func (m *mockOrderUseCase) CreateOrder(ctx context.Context) (*dto.CreateOrderResult, error) {
	return m.CreateOrderFunc(ctx)
}

func (m *mockOrderUseCase) AdvanceStatus(ctx context.Context, id uint) (domain.Order, error) {
	return m.AdvanceStatusFunc(ctx, id)
}

func (m *mockOrderUseCase) PrintOrder(ctx context.Context, id uint) (domain.Order, error) {
	return m.PrintOrderFunc(ctx, id)
}

func (m *mockOrderUseCase) ListOrders() []domain.Order {
	return m.ListOrdersFunc()
}

func (m *mockOrderUseCase) GetOrder(id uint) (domain.Order, error) {
	return m.GetOrderFunc(id)
}

func (m *mockOrderUseCase) TicketText(id uint) (string, error) {
	return m.TicketTextFunc(id)
}

func sampleOrder() domain.Order {
	return domain.NewOrder(3, 7, []domain.MenuItem{
		{ID: 1, Name: "A", Price: decimal.RequireFromString("1.00"), Category: domain.CategorySweet},
		{ID: 2, Name: "B", Price: decimal.RequireFromString("2.50"), Category: domain.CategorySavory},
	}, time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC))
}

func orderRouter(uc OrderUseCase) http.Handler {
	r := chi.NewRouter()
	r.Route("/orders", NewOrderController(uc, zap.NewNop()).RegisterRoutes)
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestOrderController_Create(t *testing.T) {
	uc := &mockOrderUseCase{
		CreateOrderFunc: func(ctx context.Context) (*dto.CreateOrderResult, error) {
			return &dto.CreateOrderResult{Order: sampleOrder(), Printed: true}, nil
		},
	}

	rec := serve(orderRouter(uc), http.MethodPost, "/orders", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.CreateOrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.TraceID)
	assert.True(t, resp.Printed)
	assert.Equal(t, "3.50", resp.Order.TotalAmount)
	assert.Equal(t, "pending", resp.Order.Status)
	assert.Equal(t, uint(7), resp.Order.OrderNumber)
	assert.Len(t, resp.Order.Items, 2)
}

func TestOrderController_Create_PrintFailed(t *testing.T) {
	uc := &mockOrderUseCase{
		CreateOrderFunc: func(ctx context.Context) (*dto.CreateOrderResult, error) {
			return &dto.CreateOrderResult{Order: sampleOrder(), PrintError: "print request failed"}, nil
		},
	}

	rec := serve(orderRouter(uc), http.MethodPost, "/orders", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.CreateOrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Printed)
	assert.Equal(t, "print request failed", resp.PrintError)
}

func TestOrderController_Create_EmptySelection(t *testing.T) {
	uc := &mockOrderUseCase{
		CreateOrderFunc: func(ctx context.Context) (*dto.CreateOrderResult, error) {
			return nil, apperrors.NewValidationError("cannot create an empty order", apperrors.ValidationDetail{
				Field:   "items",
				Message: "items must not be empty",
			})
		},
	}

	rec := serve(orderRouter(uc), http.MethodPost, "/orders", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp commons.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error)
	assert.Equal(t, "items", resp.Details[0].Field)
}

func TestOrderController_List(t *testing.T) {
	uc := &mockOrderUseCase{
		ListOrdersFunc: func() []domain.Order { return []domain.Order{sampleOrder()} },
	}

	rec := serve(orderRouter(uc), http.MethodGet, "/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ListOrdersResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "2.50", resp.Orders[0].Items[1].Price)
}

func TestOrderController_List_EmptyIsArray(t *testing.T) {
	uc := &mockOrderUseCase{
		ListOrdersFunc: func() []domain.Order { return nil },
	}

	rec := serve(orderRouter(uc), http.MethodGet, "/orders", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orders":[]}`, rec.Body.String())
}

func TestOrderController_Get_NotFound(t *testing.T) {
	uc := &mockOrderUseCase{
		GetOrderFunc: func(id uint) (domain.Order, error) {
			return domain.Order{}, apperrors.NewNotFoundError("order with id 9 not found")
		},
	}

	rec := serve(orderRouter(uc), http.MethodGet, "/orders/9", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp commons.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestOrderController_InvalidOrderID(t *testing.T) {
	for _, path := range []string{"/orders/abc", "/orders/0", "/orders/-1/advance"} {
		t.Run(path, func(t *testing.T) {
			method := http.MethodGet
			if strings.HasSuffix(path, "/advance") {
				method = http.MethodPost
			}

			rec := serve(orderRouter(&mockOrderUseCase{}), method, path, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestOrderController_Advance(t *testing.T) {
	var gotID uint
	uc := &mockOrderUseCase{
		AdvanceStatusFunc: func(ctx context.Context, id uint) (domain.Order, error) {
			gotID = id
			order := sampleOrder()
			order.Status = domain.OrderStatusPreparing
			return order, nil
		},
	}

	rec := serve(orderRouter(uc), http.MethodPost, "/orders/3/advance", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(3), gotID)
	var resp dto.OrderDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "preparing", resp.Status)
}

func TestOrderController_Print_Failure(t *testing.T) {
	uc := &mockOrderUseCase{
		PrintOrderFunc: func(ctx context.Context, id uint) (domain.Order, error) {
			return sampleOrder(), apperrors.NewPrintError("print request failed", errors.New("exit status 1"))
		},
	}

	rec := serve(orderRouter(uc), http.MethodPost, "/orders/3/print", "")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp commons.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "PRINT_ERROR", resp.Code)
	assert.Equal(t, "print request failed", resp.Message)
}

func TestOrderController_Print(t *testing.T) {
	uc := &mockOrderUseCase{
		PrintOrderFunc: func(ctx context.Context, id uint) (domain.Order, error) {
			return sampleOrder(), nil
		},
	}

	rec := serve(orderRouter(uc), http.MethodPost, "/orders/3/print", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PrintOrderResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Printed)
	assert.Equal(t, uint(7), resp.OrderNumber)
}

func TestOrderController_Ticket(t *testing.T) {
	uc := &mockOrderUseCase{
		TicketTextFunc: func(id uint) (string, error) { return "ORDER #007\n", nil },
	}

	rec := serve(orderRouter(uc), http.MethodGet, "/orders/3/ticket", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "ORDER #007\n", rec.Body.String())
}
