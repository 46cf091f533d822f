package user

import "context"

// Repository is the persistence gateway for the users collection.
type Repository interface {
	// Create inserts a new document. The caller assigns the id.
	Create(ctx context.Context, u *User) error

	// GetByID returns (nil, nil) when the document does not exist.
	GetByID(ctx context.Context, id string) (*User, error)

	// FindAny returns an arbitrary user, or (nil, nil) when the
	// collection is empty. Used by the seed-if-absent bootstrap.
	FindAny(ctx context.Context) (*User, error)
}
