package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

var nextStatus = map[OrderStatus]OrderStatus{
	OrderStatusPending:   OrderStatusPreparing,
	OrderStatusPreparing: OrderStatusReady,
	OrderStatusReady:     OrderStatusCompleted,
	OrderStatusCompleted: OrderStatusCompleted,
}

func (s OrderStatus) Valid() bool {
	_, ok := nextStatus[s]
	return ok
}

// NextStatus returns the status that follows s in the fulfillment pipeline.
// Completed is terminal and maps to itself. ok is false for unknown statuses.
func NextStatus(s OrderStatus) (next OrderStatus, ok bool) {
	next, ok = nextStatus[s]
	return next, ok
}

type Order struct {
	ID          uint
	OrderNumber uint
	Items       []MenuItem
	Status      OrderStatus
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// SumPrices adds up item prices exactly.
func SumPrices(items []MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}

// NewOrder builds a pending order from a snapshot of items. The total is
// fixed here and never recomputed.
func NewOrder(id, orderNumber uint, items []MenuItem, createdAt time.Time) Order {
	snapshot := make([]MenuItem, len(items))
	copy(snapshot, items)

	return Order{
		ID:          id,
		OrderNumber: orderNumber,
		Items:       snapshot,
		Status:      OrderStatusPending,
		TotalAmount: SumPrices(snapshot),
		CreatedAt:   createdAt,
	}
}
