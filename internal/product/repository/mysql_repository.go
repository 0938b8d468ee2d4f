package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"driwich/internal/domain"
	"driwich/internal/errors"
)

// MySQLRepository expects a DSN with clientFoundRows=true so an update that
// changes nothing still counts the matched row.
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, price, category, created_at
		FROM products
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var category string
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &category, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		item.Category = domain.Category(category)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return items, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	query := `INSERT INTO products (name, price, category, created_at) VALUES (?, ?, ?, ?)`

	item.CreatedAt = time.Now().UTC().Truncate(time.Second)
	result, err := r.db.ExecContext(ctx, query, item.Name, item.Price, string(item.Category), item.CreatedAt)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("getting last insert id: %w", err)
	}

	item.ID = int(lastInsertID)
	return item, nil
}

func (r *MySQLRepository) Update(ctx context.Context, item domain.MenuItem) error {
	query := `UPDATE products SET name = ?, price = ?, category = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, item.Name, item.Price, string(item.Category), item.ID)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", item.ID))
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}
