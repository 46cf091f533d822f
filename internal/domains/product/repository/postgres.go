package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shop-admin-backend/internal/domains/product"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository implements product.Repository on the products
// collection table: one JSONB document per row, keyed by the opaque id.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new product repository instance.
// Dependency injection pattern - receives pool from container.
func NewPostgresRepository(pool *pgxpool.Pool) product.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new product document.
func (r *postgresRepository) Create(ctx context.Context, prod *product.Product) error {
	doc, err := json.Marshal(prod)
	if err != nil {
		return fmt.Errorf("failed to encode product document: %w", err)
	}

	query := `INSERT INTO products (id, doc) VALUES ($1, $2)`
	if _, err := r.pool.Exec(ctx, query, prod.ID, doc); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

// GetByID retrieves a product document by id. Returns (nil, nil) when the
// id does not exist.
func (r *postgresRepository) GetByID(ctx context.Context, id string) (*product.Product, error) {
	query := `SELECT doc FROM products WHERE id = $1`

	var doc []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}

	var prod product.Product
	if err := json.Unmarshal(doc, &prod); err != nil {
		return nil, fmt.Errorf("failed to decode product document: %w", err)
	}
	return &prod, nil
}

// List retrieves every product document, oldest first.
func (r *postgresRepository) List(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT doc FROM products ORDER BY doc->>'createdAt'`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		var prod product.Product
		if err := json.Unmarshal(doc, &prod); err != nil {
			return nil, fmt.Errorf("failed to decode product document: %w", err)
		}
		products = append(products, &prod)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return products, nil
}

// Replace overwrites the whole document in place.
func (r *postgresRepository) Replace(ctx context.Context, prod *product.Product) error {
	doc, err := json.Marshal(prod)
	if err != nil {
		return fmt.Errorf("failed to encode product document: %w", err)
	}

	query := `UPDATE products SET doc = $2 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, prod.ID, doc)
	if err != nil {
		return fmt.Errorf("failed to replace product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.NewProductNotFound(prod.ID)
	}
	return nil
}

// Delete removes a product document by id. Deleting an id that is already
// gone succeeds, so the operation is idempotent.
func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
