package user

import "context"

// Service exposes the actor operations the rest of the application needs:
// a bootstrap-time seed and a per-request lookup.
type Service interface {
	// EnsureSeedActor returns an existing user if the collection has one,
	// otherwise creates the demo actor with the given values.
	EnsureSeedActor(ctx context.Context, name, email string) (*User, error)

	// GetUser returns the user or a USER_NOT_FOUND error.
	GetUser(ctx context.Context, id string) (*User, error)
}
