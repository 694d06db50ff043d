package service

import (
	"context"
	"strings"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

// HobbyService coordinates hobby operations and the owner's membership list.
type HobbyService interface {
	// Create stores hobby and files it under ownerID.
	Create(ctx context.Context, ownerID string, hobby domain.Hobby) (*domain.Hobby, error)
	Get(ctx context.Context, id string) (*domain.Hobby, error)
	List(ctx context.Context) ([]domain.Hobby, error)
	// Update edits hobby fields only; no user list changes.
	Update(ctx context.Context, id string, patch domain.HobbyPatch) (*domain.Hobby, error)
	// Delete removes the hobby and then drops its id from ownerID's list.
	Delete(ctx context.Context, ownerID, id string) error
}

type hobbyService struct {
	users      repository.UserRepository
	hobbies    repository.HobbyRepository
	membership *Membership
	tx         repository.Transactor
}

func NewHobbyService(users repository.UserRepository, hobbies repository.HobbyRepository, tx repository.Transactor) HobbyService {
	if tx == nil {
		tx = repository.NoTransaction
	}
	return &hobbyService{
		users:      users,
		hobbies:    hobbies,
		membership: NewMembership(users),
		tx:         tx,
	}
}

func (s *hobbyService) Create(ctx context.Context, ownerID string, hobby domain.Hobby) (*domain.Hobby, error) {
	if err := validateHobby(hobby.Name, hobby.PassionLevel); err != nil {
		return nil, err
	}

	created := hobby
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.Get(ctx, ownerID); err != nil {
			return translate(err, ErrOwnerNotFound)
		}
		if err := s.hobbies.Create(ctx, &created); err != nil {
			return err
		}
		return s.membership.Attach(ctx, ownerID, created.ID)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *hobbyService) Get(ctx context.Context, id string) (*domain.Hobby, error) {
	hobby, err := s.hobbies.Get(ctx, id)
	if err != nil {
		return nil, translate(err, ErrHobbyNotFound)
	}
	return hobby, nil
}

func (s *hobbyService) List(ctx context.Context) ([]domain.Hobby, error) {
	return s.hobbies.List(ctx)
}

func (s *hobbyService) Update(ctx context.Context, id string, patch domain.HobbyPatch) (*domain.Hobby, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, ErrInvalidName
	}
	if patch.PassionLevel != nil && !patch.PassionLevel.Valid() {
		return nil, ErrInvalidPassionLevel
	}

	hobby, err := s.hobbies.Update(ctx, id, patch)
	if err != nil {
		return nil, translate(err, ErrHobbyNotFound)
	}
	return hobby, nil
}

func (s *hobbyService) Delete(ctx context.Context, ownerID, id string) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.users.Get(ctx, ownerID); err != nil {
			return translate(err, ErrOwnerNotFound)
		}
		if err := s.hobbies.Delete(ctx, id); err != nil {
			return translate(err, ErrHobbyNotFound)
		}
		return s.membership.Detach(ctx, ownerID, id)
	})
}

func validateHobby(name string, level domain.PassionLevel) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}
	if !level.Valid() {
		return ErrInvalidPassionLevel
	}
	return nil
}
