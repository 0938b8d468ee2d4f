package usecase

import (
	"context"

	"go.uber.org/zap"

	"driwich/internal/domain"
)

type ProductLookup interface {
	Get(id int) (domain.MenuItem, error)
}

type SelectionUseCase struct {
	selectionRepo SelectionRepository
	products      ProductLookup
	logger        *zap.Logger
}

func NewSelectionUseCase(selectionRepo SelectionRepository, products ProductLookup, logger *zap.Logger) *SelectionUseCase {
	return &SelectionUseCase{
		selectionRepo: selectionRepo,
		products:      products,
		logger:        logger,
	}
}

// AddItem appends a copy of the catalog product to the selection. Later
// catalog edits do not reach items already selected.
func (uc *SelectionUseCase) AddItem(_ context.Context, productID int) ([]domain.MenuItem, error) {
	item, err := uc.products.Get(productID)
	if err != nil {
		return nil, err
	}

	items := uc.selectionRepo.Add(item)
	uc.logger.Debug("item selected", zap.Int("productId", productID), zap.Int("selectionSize", len(items)))
	return items, nil
}

func (uc *SelectionUseCase) RemoveItem(_ context.Context, index int) ([]domain.MenuItem, error) {
	return uc.selectionRepo.Remove(index)
}

func (uc *SelectionUseCase) Items() []domain.MenuItem {
	return uc.selectionRepo.Items()
}

func (uc *SelectionUseCase) Clear() {
	uc.selectionRepo.Clear()
}
