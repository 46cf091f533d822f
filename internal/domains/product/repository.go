package product

import "context"

// Repository is the persistence gateway for the products collection.
// Pure data access: no ownership checks, no business rules.
type Repository interface {
	// Create inserts a new document. The caller assigns the id.
	Create(ctx context.Context, prod *Product) error

	// GetByID returns (nil, nil) when the document does not exist.
	GetByID(ctx context.Context, id string) (*Product, error)

	// List returns every document, oldest first. Unfiltered, unpaged.
	List(ctx context.Context) ([]*Product, error)

	// Replace overwrites the whole document. Last writer wins.
	Replace(ctx context.Context, prod *Product) error

	// Delete removes by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
