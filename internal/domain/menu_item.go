package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategorySweet  Category = "sweet"
	CategorySavory Category = "savory"
)

func (c Category) Valid() bool {
	return c == CategorySweet || c == CategorySavory
}

// MenuItem is a catalog entry. Orders hold copies, never references.
type MenuItem struct {
	ID        int
	Name      string
	Price     decimal.Decimal
	Category  Category
	CreatedAt time.Time
}
