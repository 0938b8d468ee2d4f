package product

import (
	"time"

	"github.com/shopspring/decimal"

	"driwich/internal/domain"
)

type ProductRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category string           `json:"category"`
}

type ProductDTO struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

func ToDTO(item domain.MenuItem) ProductDTO {
	return ProductDTO{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price.StringFixed(2),
		Category:  string(item.Category),
		CreatedAt: item.CreatedAt,
	}
}
