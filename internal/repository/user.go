package repository

import (
	"context"

	"user-hobbies/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	// Create assigns a new id to user and persists it.
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update applies patch and returns the stored record after the change.
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
