package product

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates inventory operations. Callers are already
// authenticated; inventory is shared across all users.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (Product, error)
	List(ctx context.Context, search string, limit, offset int) ([]Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Product, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (Product, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// CreateInput holds fields for a new product. SKU and owner are fixed at
// creation and cannot be changed later.
type CreateInput struct {
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    int
	Price       float64
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name        *string
	Type        *string
	ImageURL    *string
	Description *string
	Quantity    *int
	Price       *float64
}

// ErrValidation signals malformed or missing input.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if len(in.Name) < 2 {
		return Product{}, ErrValidation("product name must be at least 2 characters long")
	}
	if len(in.SKU) < 3 {
		return Product{}, ErrValidation("sku must be at least 3 characters long")
	}
	if in.Quantity < 0 {
		return Product{}, ErrValidation("quantity cannot be negative")
	}
	if in.Price < 0 {
		return Product{}, ErrValidation("price cannot be negative")
	}

	now := time.Now().UTC()
	p := Product{
		ID:          uuid.New(),
		Name:        in.Name,
		Type:        in.Type,
		SKU:         in.SKU,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		IsActive:    true,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, search string, limit, offset int) ([]Product, error) {
	return s.repo.ListActive(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Product, error) {
	return s.repo.GetActiveByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (Product, error) {
	p, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(name) < 2 {
			return Product{}, ErrValidation("product name must be at least 2 characters long")
		}
		p.Name = name
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return Product{}, ErrValidation("quantity cannot be negative")
		}
		p.Quantity = *in.Quantity
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return Product{}, ErrValidation("price cannot be negative")
		}
		p.Price = *in.Price
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *service) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (Product, error) {
	if quantity < 0 {
		return Product{}, ErrValidation("quantity cannot be negative")
	}
	p, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		return Product{}, err
	}
	now := time.Now().UTC()
	if err := s.repo.UpdateQuantity(ctx, id, quantity, now); err != nil {
		return Product{}, err
	}
	p.Quantity = quantity
	p.UpdatedAt = now
	return p, nil
}

func (s *service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	// Deleting an already-inactive product reports ErrNotFound: once hidden,
	// a product is indistinguishable from one that never existed.
	return s.repo.Deactivate(ctx, id, time.Now().UTC())
}
