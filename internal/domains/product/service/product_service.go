package service

import (
	"context"
	"strings"
	"time"

	"shop-admin-backend/internal/domains/product"

	"github.com/google/uuid"
)

// productService implements product.Service
type productService struct {
	repo product.Repository
}

// NewProductService creates a new product service instance.
// Dependency injection pattern - receives repository from container.
func NewProductService(repo product.Repository) product.Service {
	return &productService{repo: repo}
}

// CreateProduct validates the submitted form and persists a new product
// owned by ownerID.
func (s *productService) CreateProduct(ctx context.Context, form *product.ProductForm, ownerID string) (*product.Product, error) {
	if form == nil {
		return nil, product.NewInvalidProductInput(nil)
	}
	if err := form.Validate(); err != nil {
		return nil, product.NewInvalidProductInput(err)
	}

	price, err := form.PriceDecimal()
	if err != nil {
		return nil, product.NewInvalidProductInput(err)
	}

	now := time.Now().UTC()
	prod := &product.Product{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(form.Title),
		Price:       price,
		Description: form.Description,
		ImageURL:    strings.TrimSpace(form.ImageURL),
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, prod); err != nil {
		return nil, product.NewCreateProductError(err)
	}

	return prod, nil
}

// GetProduct retrieves a product by id.
func (s *productService) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, product.NewGetProductError(err)
	}
	if prod == nil {
		return nil, product.NewProductNotFound(id)
	}
	return prod, nil
}

// ListProducts retrieves the full catalog.
func (s *productService) ListProducts(ctx context.Context) ([]*product.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, product.NewListProductsError(err)
	}
	return products, nil
}

// UpdateProduct loads the existing product and overwrites the four
// editable fields unconditionally. Id and owner are never touched; two
// concurrent updates race and the last replace wins.
func (s *productService) UpdateProduct(ctx context.Context, id string, form *product.ProductForm) (*product.Product, error) {
	if form == nil {
		return nil, product.NewInvalidProductInput(nil)
	}
	if err := form.Validate(); err != nil {
		return nil, product.NewInvalidProductInput(err)
	}

	price, err := form.PriceDecimal()
	if err != nil {
		return nil, product.NewInvalidProductInput(err)
	}

	prod, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, product.NewGetProductError(err)
	}
	if prod == nil {
		return nil, product.NewProductNotFound(id)
	}

	prod.Title = strings.TrimSpace(form.Title)
	prod.Price = price
	prod.Description = form.Description
	prod.ImageURL = strings.TrimSpace(form.ImageURL)
	prod.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, prod); err != nil {
		if product.IsProductNotFound(err) {
			return nil, err
		}
		return nil, product.NewUpdateProductError(err)
	}

	return prod, nil
}

// DeleteProduct deletes by id. A missing id is treated the same as a
// successful delete.
func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return product.NewDeleteProductError(err)
	}
	return nil
}
