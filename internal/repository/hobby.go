package repository

import (
	"context"

	"user-hobbies/internal/domain"
)

// HobbyRepository defines persistence operations for Hobby entities.
type HobbyRepository interface {
	Create(ctx context.Context, hobby *domain.Hobby) error
	Get(ctx context.Context, id string) (*domain.Hobby, error)
	List(ctx context.Context) ([]domain.Hobby, error)
	Update(ctx context.Context, id string, patch domain.HobbyPatch) (*domain.Hobby, error)
	Delete(ctx context.Context, id string) error
}
