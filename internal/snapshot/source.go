package snapshot

import (
	"context"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/service"
)

// Services reads snapshot records through the service layer.
type Services struct {
	Users   service.UserService
	Hobbies service.HobbyService
}

func (s Services) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Users.List(ctx)
}

func (s Services) ListHobbies(ctx context.Context) ([]domain.Hobby, error) {
	return s.Hobbies.List(ctx)
}
