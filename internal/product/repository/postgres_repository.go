package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"driwich/internal/domain"
	"driwich/internal/errors"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price::text, category, created_at
		FROM products
		ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var price, category string
		if err := rows.Scan(&item.ID, &item.Name, &price, &category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}

		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parsing price of product %d: %w", item.ID, err)
		}
		item.Category = domain.Category(category)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, price, category) VALUES ($1, $2::numeric, $3)
		RETURNING id, created_at`,
		item.Name, item.Price.String(), string(item.Category),
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("inserting product: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, item domain.MenuItem) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products SET name = $1, price = $2::numeric, category = $3
		WHERE id = $4`,
		item.Name, item.Price.String(), string(item.Category), item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", item.ID))
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}
