package product

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"driwich/internal/domain"
	apperrors "driwich/internal/errors"
	"driwich/internal/notify"
)

type ListOrder string

const (
	OrderByCategory ListOrder = "category"
	OrderByCreated  ListOrder = "created"
)

type Input struct {
	Name     string
	Price    decimal.Decimal
	Category domain.Category
}

// Catalog owns the product list for the process. The remote store is written
// first; the local list only changes when that write succeeds.
type Catalog struct {
	mu    sync.Mutex
	items []domain.MenuItem

	repo     Repository
	notifier Notifier
	recorder Recorder
	logger   *zap.Logger
}

func NewCatalog(repo Repository, notifier Notifier, recorder Recorder, logger *zap.Logger) *Catalog {
	return &Catalog{
		repo:     repo,
		notifier: notifier,
		recorder: recorder,
		logger:   logger,
	}
}

// Reload replaces the local list with the remote store's contents.
func (c *Catalog) Reload(ctx context.Context) error {
	items, err := c.repo.FindAll(ctx)
	if err != nil {
		return c.storeError(ctx, "list", "Failed to load menu items", err)
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	c.logger.Info("catalog loaded", zap.Int("products", len(items)))
	return nil
}

// Seed inserts items when the catalog is empty. It returns how many were added.
func (c *Catalog) Seed(ctx context.Context, items []domain.MenuItem) (int, error) {
	c.mu.Lock()
	empty := len(c.items) == 0
	c.mu.Unlock()

	if !empty {
		return 0, nil
	}

	added := 0
	for _, item := range items {
		stored, err := c.repo.Insert(ctx, item)
		if err != nil {
			c.recorder.StoreFailed("seed")
			return added, apperrors.NewInternalError("failed to seed catalog", err)
		}
		c.prepend(stored)
		added++
	}

	c.logger.Info("catalog seeded", zap.Int("products", added))
	return added, nil
}

func (c *Catalog) List(order ListOrder) []domain.MenuItem {
	c.mu.Lock()
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	c.mu.Unlock()

	if order == OrderByCategory {
		slices.SortStableFunc(out, func(a, b domain.MenuItem) int {
			return cmp.Compare(a.Category, b.Category)
		})
	}
	return out
}

func (c *Catalog) Get(id int) (domain.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return domain.MenuItem{}, apperrors.NewNotFoundError("product not found")
	}
	return c.items[i], nil
}

func (c *Catalog) Create(ctx context.Context, input Input) (domain.MenuItem, error) {
	stored, err := c.repo.Insert(ctx, domain.MenuItem{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
	})
	if err != nil {
		return domain.MenuItem{}, c.storeError(ctx, "create", "Failed to add product", err)
	}

	c.prepend(stored)
	c.notifier.Notify(ctx, notify.Info("Success", "Product added successfully"))
	return stored, nil
}

func (c *Catalog) Update(ctx context.Context, id int, input Input) (domain.MenuItem, error) {
	c.mu.Lock()
	createdAt := c.createdAt(id)
	c.mu.Unlock()

	item := domain.MenuItem{
		ID:        id,
		Name:      input.Name,
		Price:     input.Price,
		Category:  input.Category,
		CreatedAt: createdAt,
	}

	if err := c.repo.Update(ctx, item); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return domain.MenuItem{}, err
		}
		return domain.MenuItem{}, c.storeError(ctx, "update", "Failed to update product", err)
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.items[i] = item
	} else {
		c.items = append([]domain.MenuItem{item}, c.items...)
	}
	c.mu.Unlock()

	c.notifier.Notify(ctx, notify.Info("Success", "Product updated successfully"))
	return item, nil
}

func (c *Catalog) Delete(ctx context.Context, id int) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return err
		}
		return c.storeError(ctx, "delete", "Failed to delete product", err)
	}

	c.mu.Lock()
	if i := c.indexOf(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	c.mu.Unlock()

	c.notifier.Notify(ctx, notify.Info("Success", "Product deleted successfully"))
	return nil
}

func (c *Catalog) prepend(item domain.MenuItem) {
	c.mu.Lock()
	c.items = append([]domain.MenuItem{item}, c.items...)
	c.mu.Unlock()
}

func (c *Catalog) indexOf(id int) int {
	return slices.IndexFunc(c.items, func(item domain.MenuItem) bool { return item.ID == id })
}

func (c *Catalog) createdAt(id int) (t time.Time) {
	if i := c.indexOf(id); i >= 0 {
		t = c.items[i].CreatedAt
	}
	return t
}

func (c *Catalog) storeError(ctx context.Context, operation, message string, err error) error {
	c.logger.Error("catalog store error", zap.String("operation", operation), zap.Error(err))
	c.recorder.StoreFailed(operation)
	c.notifier.Notify(ctx, notify.Error("Error", message))
	return apperrors.NewInternalError(message, err)
}
