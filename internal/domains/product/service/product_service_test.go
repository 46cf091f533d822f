package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shop-admin-backend/internal/domains/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory product.Repository.
type fakeRepo struct {
	mu       sync.Mutex
	docs     map[string]product.Product
	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[string]product.Product)}
}

func (r *fakeRepo) Create(ctx context.Context, prod *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.docs[prod.ID] = *prod
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	prod, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &prod, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*product.Product, 0, len(r.docs))
	for id := range r.docs {
		prod := r.docs[id]
		out = append(out, &prod)
	}
	return out, nil
}

func (r *fakeRepo) Replace(ctx context.Context, prod *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.docs[prod.ID]; !ok {
		return product.NewProductNotFound(prod.ID)
	}
	r.docs[prod.ID] = *prod
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	delete(r.docs, id)
	return nil
}

func validForm() *product.ProductForm {
	return &product.ProductForm{
		Title:       "Lamp",
		Price:       "19.99",
		Description: "desk lamp",
		ImageURL:    "http://x/lamp.png",
	}
}

func TestCreateProductStampsOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo)

	prod, err := svc.CreateProduct(context.Background(), validForm(), "actor-1")
	require.NoError(t, err)

	assert.NotEmpty(t, prod.ID)
	assert.Equal(t, "actor-1", prod.UserID)
	assert.Equal(t, "Lamp", prod.Title)
	assert.True(t, prod.Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, "desk lamp", prod.Description)
	assert.Equal(t, "http://x/lamp.png", prod.ImageURL)

	stored, err := svc.GetProduct(context.Background(), prod.ID)
	require.NoError(t, err)
	assert.Equal(t, prod.UserID, stored.UserID)
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo)

	tests := []struct {
		name string
		form *product.ProductForm
	}{
		{"nil form", nil},
		{"missing title", &product.ProductForm{Price: "19.99"}},
		{"malformed price", &product.ProductForm{Title: "Lamp", Price: "cheap"}},
		{"negative price", &product.ProductForm{Title: "Lamp", Price: "-0.01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tt.form, "actor-1")
			assert.True(t, product.IsInvalidProductInput(err))
		})
	}

	// nothing reached the store
	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestUpdateProductOverwritesEditableFieldsOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo)

	created, err := svc.CreateProduct(context.Background(), validForm(), "actor-1")
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), created.ID, &product.ProductForm{
		Title:       "Desk Lamp",
		Price:       "24.50",
		Description: "a brighter lamp",
		ImageURL:    "http://x/lamp-v2.png",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "actor-1", updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	assert.Equal(t, "Desk Lamp", updated.Title)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("24.50")))
	assert.Equal(t, "a brighter lamp", updated.Description)
	assert.Equal(t, "http://x/lamp-v2.png", updated.ImageURL)
}

func TestUpdateProductNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo)

	_, err := svc.UpdateProduct(context.Background(), "missing", validForm())
	assert.True(t, product.IsProductNotFound(err))
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo)

	created, err := svc.CreateProduct(context.Background(), validForm(), "actor-1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
	_, err = svc.GetProduct(context.Background(), created.ID)
	assert.True(t, product.IsProductNotFound(err))

	// second delete of the same id succeeds as well
	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
}

func TestServiceWrapsRepositoryFailures(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = errors.New("connection refused")
	svc := NewProductService(repo)

	_, err := svc.CreateProduct(context.Background(), validForm(), "actor-1")
	require.Error(t, err)
	assert.False(t, product.IsInvalidProductInput(err))

	_, err = svc.ListProducts(context.Background())
	require.Error(t, err)

	_, err = svc.GetProduct(context.Background(), "any")
	require.Error(t, err)
	assert.False(t, product.IsProductNotFound(err))

	err = svc.DeleteProduct(context.Background(), "any")
	require.Error(t, err)
}
