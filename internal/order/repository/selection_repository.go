package repository

import (
	"fmt"
	"sync"

	"driwich/internal/domain"
	"driwich/internal/errors"
)

// MemorySelectionRepository holds the items picked for the next order.
// The same product may appear more than once.
type MemorySelectionRepository struct {
	mu    sync.Mutex
	items []domain.MenuItem
}

func NewMemorySelectionRepository() *MemorySelectionRepository {
	return &MemorySelectionRepository{}
}

func (r *MemorySelectionRepository) Add(item domain.MenuItem) []domain.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return r.snapshot()
}

func (r *MemorySelectionRepository) Remove(index int) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.items) {
		msg := fmt.Sprintf("index must be between 0 and %d", len(r.items)-1)
		if len(r.items) == 0 {
			msg = "selection is empty"
		}
		return nil, errors.NewValidationError("invalid selection index", errors.ValidationDetail{
			Field:   "index",
			Message: msg,
		})
	}

	r.items = append(r.items[:index], r.items[index+1:]...)
	return r.snapshot(), nil
}

func (r *MemorySelectionRepository) Items() []domain.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// Drain returns the current items and empties the selection in one step.
func (r *MemorySelectionRepository) Drain() []domain.MenuItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.items
	r.items = nil
	return items
}

func (r *MemorySelectionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

func (r *MemorySelectionRepository) snapshot() []domain.MenuItem {
	out := make([]domain.MenuItem, len(r.items))
	copy(out, r.items)
	return out
}
