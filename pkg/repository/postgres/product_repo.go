package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akulinev/inventory/pkg/product"
)

// ProductRepository implements product.Repository backed by PostgreSQL (pgx).
// Soft deletion: rows are flipped to is_active = FALSE and kept; every query
// serving clients filters on is_active = TRUE.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) (*ProductRepository, error) {
	r := &ProductRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProductRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS products (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL DEFAULT '',
	sku TEXT NOT NULL UNIQUE,
	image_url TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	quantity INTEGER NOT NULL CHECK (quantity >= 0),
	price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_by UUID,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
`)
	return err
}

func (r *ProductRepository) Create(ctx context.Context, p product.Product) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO products (id, name, type, sku, image_url, description, quantity, price, is_active, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`, p.ID, p.Name, p.Type, p.SKU, p.ImageURL, p.Description, p.Quantity, p.Price, p.IsActive, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on sku
			return product.ErrSKUAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProductRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (product.Product, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, name, type, sku, image_url, description, quantity, price, is_active, created_by, created_at, updated_at
FROM products WHERE id = $1 AND is_active = TRUE
`, id)
	return scanProduct(row)
}

func (r *ProductRepository) ListActive(ctx context.Context, search string, limit, offset int) ([]product.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, name, type, sku, image_url, description, quantity, price, is_active, created_by, created_at, updated_at
FROM products
WHERE is_active = TRUE AND ($3 = '' OR name ILIKE '%' || $3 || '%')
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p product.Product) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE products
SET name = $2, type = $3, image_url = $4, description = $5, quantity = $6, price = $7, updated_at = $8
WHERE id = $1 AND is_active = TRUE
`, p.ID, p.Name, p.Type, p.ImageURL, p.Description, p.Quantity, p.Price, p.UpdatedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int, updatedAt time.Time) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE products SET quantity = $2, updated_at = $3 WHERE id = $1 AND is_active = TRUE
`, id, quantity, updatedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	// The is_active guard makes repeat deletes report ErrNotFound instead of
	// silently succeeding.
	cmd, err := r.pool.Exec(ctx, `
UPDATE products SET is_active = FALSE, updated_at = $2 WHERE id = $1 AND is_active = TRUE
`, id, updatedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return product.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	var createdAt, updatedAt time.Time
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.SKU, &p.ImageURL, &p.Description,
		&p.Quantity, &p.Price, &p.IsActive, &p.CreatedBy, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, product.ErrNotFound
		}
		return product.Product{}, err
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}
