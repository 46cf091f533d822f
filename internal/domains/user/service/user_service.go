package service

import (
	"context"

	"shop-admin-backend/internal/domains/user"
	"shop-admin-backend/pkg/logger"

	"github.com/google/uuid"
)

// userService implements user.Service
type userService struct {
	repo user.Repository
}

// NewUserService creates a new user service instance.
func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

// EnsureSeedActor returns the first user on record, creating the demo
// actor when the collection is empty. Runs once at bootstrap.
func (s *userService) EnsureSeedActor(ctx context.Context, name, email string) (*user.User, error) {
	existing, err := s.repo.FindAny(ctx)
	if err != nil {
		return nil, user.NewSeedUserError(err)
	}
	if existing != nil {
		return existing, nil
	}

	seeded := &user.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Cart:  user.Cart{Items: []user.CartItem{}},
	}

	if err := s.repo.Create(ctx, seeded); err != nil {
		return nil, user.NewSeedUserError(err)
	}

	logger.Info("Seeded demo actor", map[string]interface{}{
		"user_id": seeded.ID,
		"email":   seeded.Email,
	})

	return seeded, nil
}

// GetUser retrieves a user by id.
func (s *userService) GetUser(ctx context.Context, id string) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, user.NewGetUserError(err)
	}
	if u == nil {
		return nil, user.NewUserNotFound(id)
	}
	return u, nil
}
