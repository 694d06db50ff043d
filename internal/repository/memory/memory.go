// Package memory is an in-process backend used by tests and local runs.
// Records are kept in insertion order; ids are random UUIDs.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

type table[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = row
	t.order = append(t.order, id)
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) update(id string, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	fn(&row)
	t.rows[id] = row
	return row, true
}

func (t *table[T]) delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// New returns an empty store. Writes are not grouped into transactions.
func New() repository.Store {
	return repository.Store{
		Users:   NewUserRepository(),
		Hobbies: NewHobbyRepository(),
		Tx:      repository.NoTransaction,
		Close:   func(context.Context) error { return nil },
	}
}

type UserRepository struct {
	users *table[domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: newTable[domain.User]()}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	r.users.insert(user.ID, cloneUser(*user))
	return nil
}

func (r *UserRepository) Get(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users.get(id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	user = cloneUser(user)
	return &user, nil
}

func (r *UserRepository) List(context.Context) ([]domain.User, error) {
	users := r.users.list()
	for i := range users {
		users[i] = cloneUser(users[i])
	}
	return users, nil
}

func (r *UserRepository) Update(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	user, ok := r.users.update(id, func(u *domain.User) { patch.Apply(u) })
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	user = cloneUser(user)
	return &user, nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	if !r.users.delete(id) {
		return fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

type HobbyRepository struct {
	hobbies *table[domain.Hobby]
}

func NewHobbyRepository() *HobbyRepository {
	return &HobbyRepository{hobbies: newTable[domain.Hobby]()}
}

func (r *HobbyRepository) Create(_ context.Context, hobby *domain.Hobby) error {
	hobby.ID = uuid.NewString()
	r.hobbies.insert(hobby.ID, *hobby)
	return nil
}

func (r *HobbyRepository) Get(_ context.Context, id string) (*domain.Hobby, error) {
	hobby, ok := r.hobbies.get(id)
	if !ok {
		return nil, fmt.Errorf("hobby %s: %w", id, repository.ErrNotFound)
	}
	return &hobby, nil
}

func (r *HobbyRepository) List(context.Context) ([]domain.Hobby, error) {
	return r.hobbies.list(), nil
}

func (r *HobbyRepository) Update(_ context.Context, id string, patch domain.HobbyPatch) (*domain.Hobby, error) {
	hobby, ok := r.hobbies.update(id, func(h *domain.Hobby) { patch.Apply(h) })
	if !ok {
		return nil, fmt.Errorf("hobby %s: %w", id, repository.ErrNotFound)
	}
	return &hobby, nil
}

func (r *HobbyRepository) Delete(_ context.Context, id string) error {
	if !r.hobbies.delete(id) {
		return fmt.Errorf("hobby %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func cloneUser(u domain.User) domain.User {
	u.Hobbies = append([]string{}, u.Hobbies...)
	return u
}

var (
	_ repository.UserRepository  = (*UserRepository)(nil)
	_ repository.HobbyRepository = (*HobbyRepository)(nil)
)
