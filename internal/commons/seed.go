package commons

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"

	"driwich/internal/domain"
)

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
}

// LoadMenuSeed reads the starter menu used to fill an empty catalog.
func LoadMenuSeed(path string) ([]domain.MenuItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(seed.Products))
	for i, p := range seed.Products {
		if p.Name == "" {
			return nil, fmt.Errorf("seed product %d: name is required", i)
		}

		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("seed product %q: invalid price %q: %w", p.Name, p.Price, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("seed product %q: price must be non-negative", p.Name)
		}

		category := domain.Category(p.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("seed product %q: unknown category %q", p.Name, p.Category)
		}

		items = append(items, domain.MenuItem{Name: p.Name, Price: price, Category: category})
	}

	return items, nil
}
