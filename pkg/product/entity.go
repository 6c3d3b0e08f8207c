package product

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Product is an inventory item. Inactive products are soft-deleted: the row
// survives for history but never reaches clients.
type Product struct {
	ID          uuid.UUID
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    int
	Price       float64
	IsActive    bool
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InStock reports whether any quantity is available.
func (p Product) InStock() bool { return p.Quantity > 0 }

var (
	ErrNotFound         = errors.New("product not found")
	ErrSKUAlreadyExists = errors.New("sku already exists")
)

// Repository is the persistence port for products. Read and mutate methods
// only ever see active rows; a soft-deleted product behaves as missing.
type Repository interface {
	Create(ctx context.Context, p Product) error
	GetActiveByID(ctx context.Context, id uuid.UUID) (Product, error)
	ListActive(ctx context.Context, search string, limit, offset int) ([]Product, error)
	Update(ctx context.Context, p Product) error
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int, updatedAt time.Time) error
	Deactivate(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
}
