package product

import (
	"context"

	"driwich/internal/domain"
)

type Repository interface {
	FindAll(ctx context.Context) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id int) error
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type Recorder interface {
	StoreFailed(operation string)
}

type CatalogService interface {
	List(order ListOrder) []domain.MenuItem
	Reload(ctx context.Context) error
	Create(ctx context.Context, input Input) (domain.MenuItem, error)
	Update(ctx context.Context, id int, input Input) (domain.MenuItem, error)
	Delete(ctx context.Context, id int) error
}
