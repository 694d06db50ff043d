package service

import (
	"context"
	"errors"
	"strings"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

// UserService describes user lifecycle operations.
type UserService interface {
	Create(ctx context.Context, name string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// ListHobbies resolves the user's hobby ids in list order. Ids that no
	// longer resolve are skipped.
	ListHobbies(ctx context.Context, id string) ([]domain.Hobby, error)
}

type userService struct {
	users   repository.UserRepository
	hobbies repository.HobbyRepository
}

func NewUserService(users repository.UserRepository, hobbies repository.HobbyRepository) UserService {
	return &userService{
		users:   users,
		hobbies: hobbies,
	}
}

func (s *userService) Create(ctx context.Context, name string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	user := &domain.User{
		Name:    name,
		Hobbies: []string{},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrInvalidName
	}
	if _, err := s.users.Get(ctx, id); err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	if patch.Hobbies != nil {
		for _, hobbyID := range *patch.Hobbies {
			if _, err := s.hobbies.Get(ctx, hobbyID); err != nil {
				return nil, translate(err, ErrUnknownHobby)
			}
		}
	}

	user, err := s.users.Update(ctx, id, patch)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return translate(s.users.Delete(ctx, id), ErrUserNotFound)
}

func (s *userService) ListHobbies(ctx context.Context, id string) ([]domain.Hobby, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, translate(err, ErrUserNotFound)
	}

	hobbies := make([]domain.Hobby, 0, len(user.Hobbies))
	for _, hobbyID := range user.Hobbies {
		hobby, err := s.hobbies.Get(ctx, hobbyID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		hobbies = append(hobbies, *hobby)
	}
	return hobbies, nil
}
