package product

import "context"

// Service is the product management business logic consumed by the HTTP
// handlers.
type Service interface {
	// CreateProduct validates the form and persists a new product owned
	// by ownerID.
	CreateProduct(ctx context.Context, form *ProductForm, ownerID string) (*Product, error)

	// GetProduct returns the product or a PRODUCT_NOT_FOUND error.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// ListProducts returns the full catalog.
	ListProducts(ctx context.Context) ([]*Product, error)

	// UpdateProduct loads the existing product and overwrites the four
	// editable fields unconditionally. Owner and id are untouched.
	UpdateProduct(ctx context.Context, id string, form *ProductForm) (*Product, error)

	// DeleteProduct deletes by id, idempotently.
	DeleteProduct(ctx context.Context, id string) error
}
