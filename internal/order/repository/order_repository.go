package repository

import (
	"fmt"
	"sync"
	"time"

	"driwich/internal/domain"
	"driwich/internal/errors"
)

// MemoryOrderRepository keeps the orders of the current session, most
// recent first. Order numbers start at 1 and grow by one per order.
type MemoryOrderRepository struct {
	mu              sync.Mutex
	orders          []domain.Order
	lastOrderNumber uint
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// Create builds a pending order from items and places it at the head.
func (r *MemoryOrderRepository) Create(items []domain.MenuItem, createdAt time.Time) domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastOrderNumber++
	order := domain.NewOrder(uint(len(r.orders)+1), r.lastOrderNumber, items, createdAt)
	r.orders = append([]domain.Order{order}, r.orders...)

	return cloneOrder(order)
}

func (r *MemoryOrderRepository) FindAll() []domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Order, len(r.orders))
	for i, order := range r.orders {
		out[i] = cloneOrder(order)
	}
	return out
}

func (r *MemoryOrderRepository) FindByID(id uint) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Order{}, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	return cloneOrder(r.orders[i]), nil
}

// Advance moves an order one step along the status pipeline. changed is
// false when the order was already completed.
func (r *MemoryOrderRepository) Advance(id uint) (order domain.Order, changed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return domain.Order{}, false, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	current := r.orders[i].Status
	next, ok := domain.NextStatus(current)
	if !ok {
		return domain.Order{}, false, errors.NewValidationError("unknown order status", errors.ValidationDetail{
			Field:   "status",
			Message: fmt.Sprintf("status %q is not part of the pipeline", current),
		})
	}

	r.orders[i].Status = next
	return cloneOrder(r.orders[i]), next != current, nil
}

func (r *MemoryOrderRepository) indexOf(id uint) int {
	for i, order := range r.orders {
		if order.ID == id {
			return i
		}
	}
	return -1
}

func cloneOrder(order domain.Order) domain.Order {
	items := make([]domain.MenuItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
