package service

import (
	"context"

	"github.com/thoas/go-funk"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

// Membership keeps a user's hobby list in step with hobby creation and
// deletion. Each change is a read of the owner followed by a write of the
// whole list; callers that need both steps to land together run them inside
// a repository.Transactor.
type Membership struct {
	users repository.UserRepository
}

func NewMembership(users repository.UserRepository) *Membership {
	return &Membership{users: users}
}

// Attach appends hobbyID to the owner's list. An id already present is left
// where it is, so retrying Attach is safe.
func (m *Membership) Attach(ctx context.Context, ownerID, hobbyID string) error {
	owner, err := m.users.Get(ctx, ownerID)
	if err != nil {
		return translate(err, ErrOwnerNotFound)
	}
	if funk.ContainsString(owner.Hobbies, hobbyID) {
		return nil
	}

	hobbies := append(append([]string{}, owner.Hobbies...), hobbyID)
	return m.write(ctx, ownerID, hobbies)
}

// Detach removes every occurrence of hobbyID from the owner's list. Removing
// an id that is not there is a no-op.
func (m *Membership) Detach(ctx context.Context, ownerID, hobbyID string) error {
	owner, err := m.users.Get(ctx, ownerID)
	if err != nil {
		return translate(err, ErrOwnerNotFound)
	}
	if !funk.ContainsString(owner.Hobbies, hobbyID) {
		return nil
	}

	hobbies := funk.FilterString(owner.Hobbies, func(id string) bool {
		return id != hobbyID
	})
	return m.write(ctx, ownerID, hobbies)
}

func (m *Membership) write(ctx context.Context, ownerID string, hobbies []string) error {
	_, err := m.users.Update(ctx, ownerID, domain.UserPatch{Hobbies: &hobbies})
	return translate(err, ErrOwnerNotFound)
}
