package product

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeRepo keeps products in memory, including soft-deleted rows, mirroring
// the visibility rules of the real repository.
type fakeRepo struct {
	rows map[uuid.UUID]Product
}

func newFakeRepo() *fakeRepo { return &fakeRepo{rows: map[uuid.UUID]Product{}} }

func (f *fakeRepo) Create(ctx context.Context, p Product) error {
	for _, row := range f.rows {
		if row.SKU == p.SKU {
			return ErrSKUAlreadyExists
		}
	}
	f.rows[p.ID] = p
	return nil
}

func (f *fakeRepo) GetActiveByID(ctx context.Context, id uuid.UUID) (Product, error) {
	p, ok := f.rows[id]
	if !ok || !p.IsActive {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) ListActive(ctx context.Context, search string, limit, offset int) ([]Product, error) {
	var res []Product
	for _, p := range f.rows {
		if !p.IsActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		res = append(res, p)
	}
	return res, nil
}

func (f *fakeRepo) Update(ctx context.Context, p Product) error {
	old, ok := f.rows[p.ID]
	if !ok || !old.IsActive {
		return ErrNotFound
	}
	f.rows[p.ID] = p
	return nil
}

func (f *fakeRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int, updatedAt time.Time) error {
	p, ok := f.rows[id]
	if !ok || !p.IsActive {
		return ErrNotFound
	}
	p.Quantity = quantity
	p.UpdatedAt = updatedAt
	f.rows[id] = p
	return nil
}

func (f *fakeRepo) Deactivate(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	p, ok := f.rows[id]
	if !ok || !p.IsActive {
		return ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = updatedAt
	f.rows[id] = p
	return nil
}

func validInput() CreateInput {
	return CreateInput{Name: "Widget", SKU: "WID-001", Quantity: 5, Price: 9.99}
}

func TestCreate_Valid(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)
	require.True(t, p.IsActive)
	require.Equal(t, "Widget", p.Name)
	require.True(t, p.InStock())
}

func TestCreate_ZeroQuantityAllowed(t *testing.T) {
	svc := NewService(newFakeRepo())

	in := validInput()
	in.Quantity = 0
	p, err := svc.Create(context.Background(), uuid.New(), in)
	require.NoError(t, err)
	require.False(t, p.InStock())
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())

	tests := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{name: "negative quantity", mutate: func(in *CreateInput) { in.Quantity = -1 }},
		{name: "negative price", mutate: func(in *CreateInput) { in.Price = -0.01 }},
		{name: "short name", mutate: func(in *CreateInput) { in.Name = "W" }},
		{name: "short sku", mutate: func(in *CreateInput) { in.SKU = "AB" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), uuid.New(), in)
			var vErr ErrValidation
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreate_DuplicateSKU(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Other widget"
	_, err = svc.Create(context.Background(), uuid.New(), in)
	require.ErrorIs(t, err, ErrSKUAlreadyExists)
}

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Name: "Widget", SKU: "WID-001", Type: "tool", Description: "desc",
		Quantity: 5, Price: 9.99,
	})
	require.NoError(t, err)

	name := "Widget v2"
	price := 19.99
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{Name: &name, Price: &price})
	require.NoError(t, err)
	require.Equal(t, "Widget v2", updated.Name)
	require.Equal(t, 19.99, updated.Price)
	// untouched fields survive
	require.Equal(t, "tool", updated.Type)
	require.Equal(t, "desc", updated.Description)
	require.Equal(t, 5, updated.Quantity)
	require.Equal(t, "WID-001", updated.SKU)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo())
	p, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	neg := -1
	_, err = svc.Update(context.Background(), p.ID, UpdateInput{Quantity: &neg})
	var vErr ErrValidation
	require.ErrorAs(t, err, &vErr)
}

func TestUpdate_MissingProduct(t *testing.T) {
	svc := NewService(newFakeRepo())

	name := "anything"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateQuantity_OnlyQuantityChanges(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	updated, err := svc.UpdateQuantity(context.Background(), p.ID, 42)
	require.NoError(t, err)
	require.Equal(t, 42, updated.Quantity)

	stored := repo.rows[p.ID]
	require.Equal(t, 42, stored.Quantity)
	require.Equal(t, p.Name, stored.Name)
	require.Equal(t, p.SKU, stored.SKU)
	require.Equal(t, p.Price, stored.Price)
	require.Equal(t, p.CreatedBy, stored.CreatedBy)
	require.Equal(t, p.CreatedAt, stored.CreatedAt)
}

func TestUpdateQuantity_Negative(t *testing.T) {
	svc := NewService(newFakeRepo())
	p, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(context.Background(), p.ID, -1)
	var vErr ErrValidation
	require.ErrorAs(t, err, &vErr)
}

func TestSoftDelete_HidesButKeepsRow(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), p.ID))

	_, err = svc.GetByID(context.Background(), p.ID)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(context.Background(), "", 50, 0)
	require.NoError(t, err)
	require.Empty(t, list)

	// the row itself survives for history
	stored, ok := repo.rows[p.ID]
	require.True(t, ok)
	require.False(t, stored.IsActive)
}

func TestSoftDelete_RepeatReportsNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), uuid.New(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(context.Background(), p.ID))
	require.ErrorIs(t, svc.SoftDelete(context.Background(), p.ID), ErrNotFound)
}

func TestList_SearchFiltersByName(t *testing.T) {
	svc := NewService(newFakeRepo())
	owner := uuid.New()

	_, err := svc.Create(context.Background(), owner, CreateInput{Name: "Widget", SKU: "WID-001", Quantity: 1, Price: 1})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), owner, CreateInput{Name: "Gadget", SKU: "GAD-001", Quantity: 1, Price: 1})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "wid", 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Widget", list[0].Name)
}
