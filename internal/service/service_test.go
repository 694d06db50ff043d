package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
	"user-hobbies/internal/repository/memory"
)

type services struct {
	store   repository.Store
	users   UserService
	hobbies HobbyService
}

func newServices(t *testing.T) services {
	t.Helper()
	store := memory.New()
	return services{
		store:   store,
		users:   NewUserService(store.Users, store.Hobbies),
		hobbies: NewHobbyService(store.Users, store.Hobbies, store.Tx),
	}
}

func TestCreateUserStartsWithoutHobbies(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	for _, name := range []string{"Famous", "John", "Ünïcödé"} {
		user, err := s.users.Create(ctx, name)
		require.NoError(t, err)

		got, err := s.users.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
		assert.Empty(t, got.Hobbies)
	}

	_, err := s.users.Create(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestGetUnknownUser(t *testing.T) {
	s := newServices(t)
	_, err := s.users.Get(context.Background(), "6339f7fa50f48770d8b1c08e")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHobbyLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	user, err := s.users.Create(ctx, "Famous")
	require.NoError(t, err)

	singing, err := s.hobbies.Create(ctx, user.ID, domain.Hobby{Name: "Singing", PassionLevel: domain.PassionLow, Year: 2020})
	require.NoError(t, err)

	got, err := s.hobbies.Get(ctx, singing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Singing", got.Name)
	assert.Equal(t, domain.PassionLow, got.PassionLevel)
	assert.Equal(t, int64(2020), got.Year)

	name := "Gaming"
	_, err = s.hobbies.Update(ctx, singing.ID, domain.HobbyPatch{Name: &name})
	require.NoError(t, err)
	got, err = s.hobbies.Get(ctx, singing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gaming", got.Name)

	dancing, err := s.hobbies.Create(ctx, user.ID, domain.Hobby{Name: "Dancing", PassionLevel: domain.PassionMedium, Year: 2020})
	require.NoError(t, err)

	owned, err := s.users.ListHobbies(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "Gaming", owned[0].Name)
	assert.Equal(t, "Dancing", owned[1].Name)

	owner, err := s.users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{singing.ID, dancing.ID}, owner.Hobbies)

	require.NoError(t, s.hobbies.Delete(ctx, user.ID, singing.ID))

	_, err = s.hobbies.Get(ctx, singing.ID)
	assert.ErrorIs(t, err, ErrHobbyNotFound)

	owned, err = s.users.ListHobbies(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, dancing.ID, owned[0].ID)

	owner, err = s.users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{dancing.ID}, owner.Hobbies)
}

func TestCreateHobbyRequiresOwner(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	_, err := s.hobbies.Create(ctx, "missing", domain.Hobby{Name: "Singing", Year: 2020})
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	hobbies, err := s.hobbies.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, hobbies, "no hobby is stored without an owner")
}

func TestCreateHobbyValidates(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	user, err := s.users.Create(ctx, "Famous")
	require.NoError(t, err)

	_, err = s.hobbies.Create(ctx, user.ID, domain.Hobby{Name: "", Year: 2020})
	assert.ErrorIs(t, err, ErrInvalidName)
	_, err = s.hobbies.Create(ctx, user.ID, domain.Hobby{Name: "Singing", PassionLevel: 4, Year: 2020})
	assert.ErrorIs(t, err, ErrInvalidPassionLevel)
}

func TestDeleteHobbyErrors(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	user, err := s.users.Create(ctx, "Famous")
	require.NoError(t, err)
	hobby, err := s.hobbies.Create(ctx, user.ID, domain.Hobby{Name: "Singing", Year: 2020})
	require.NoError(t, err)

	assert.ErrorIs(t, s.hobbies.Delete(ctx, "missing", hobby.ID), ErrOwnerNotFound)
	assert.ErrorIs(t, s.hobbies.Delete(ctx, user.ID, "missing"), ErrHobbyNotFound)

	_, err = s.hobbies.Get(ctx, hobby.ID)
	assert.NoError(t, err, "failed deletes leave the hobby in place")
}

func TestDeleteHobbyFromAnotherUserLeavesOwnerList(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	owner, err := s.users.Create(ctx, "Owner")
	require.NoError(t, err)
	other, err := s.users.Create(ctx, "Other")
	require.NoError(t, err)
	hobby, err := s.hobbies.Create(ctx, owner.ID, domain.Hobby{Name: "Singing", Year: 2020})
	require.NoError(t, err)

	require.NoError(t, s.hobbies.Delete(ctx, other.ID, hobby.ID))

	got, err := s.users.Get(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{hobby.ID}, got.Hobbies, "dangling id stays with the real owner")

	owned, err := s.users.ListHobbies(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, owned, "dangling ids are skipped")
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	user, err := s.users.Create(ctx, "Famous")
	require.NoError(t, err)
	hobby, err := s.hobbies.Create(ctx, user.ID, domain.Hobby{Name: "Singing", Year: 2020})
	require.NoError(t, err)

	name := "Paul"
	updated, err := s.users.Update(ctx, user.ID, domain.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, user.ID, updated.ID)
	assert.Equal(t, "Paul", updated.Name)
	assert.Equal(t, []string{hobby.ID}, updated.Hobbies)

	unknown := []string{hobby.ID, "missing"}
	_, err = s.users.Update(ctx, user.ID, domain.UserPatch{Hobbies: &unknown})
	assert.ErrorIs(t, err, ErrUnknownHobby)

	empty := []string{}
	updated, err = s.users.Update(ctx, user.ID, domain.UserPatch{Hobbies: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Hobbies)

	_, err = s.users.Update(ctx, "missing", domain.UserPatch{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)

	blank := ""
	_, err = s.users.Update(ctx, user.ID, domain.UserPatch{Name: &blank})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestDeleteUserKeepsHobbies(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	user, err := s.users.Create(ctx, "Famous")
	require.NoError(t, err)
	hobby, err := s.hobbies.Create(ctx, user.ID, domain.Hobby{Name: "Singing", Year: 2020})
	require.NoError(t, err)

	require.NoError(t, s.users.Delete(ctx, user.ID))
	assert.ErrorIs(t, s.users.Delete(ctx, user.ID), ErrUserNotFound)

	_, err = s.hobbies.Get(ctx, hobby.ID)
	assert.NoError(t, err)

	_, err = s.users.ListHobbies(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestHobbyWritesRunInOneTransaction(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	var units int
	tx := repository.TransactorFunc(func(ctx context.Context, fn func(ctx context.Context) error) error {
		units++
		return fn(ctx)
	})
	users := NewUserService(store.Users, store.Hobbies)
	hobbies := NewHobbyService(store.Users, store.Hobbies, tx)

	user, err := users.Create(ctx, "Famous")
	require.NoError(t, err)
	hobby, err := hobbies.Create(ctx, user.ID, domain.Hobby{Name: "Singing", Year: 2020})
	require.NoError(t, err)
	require.NoError(t, hobbies.Delete(ctx, user.ID, hobby.ID))

	assert.Equal(t, 2, units)
}

var errStoreDown = errors.New("store down")

// failingUsers fails every user write.
type failingUsers struct {
	repository.UserRepository
}

func (f failingUsers) Update(context.Context, string, domain.UserPatch) (*domain.User, error) {
	return nil, errStoreDown
}

func TestMembershipWriteFaultSurfaces(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	users := failingUsers{store.Users}
	hobbies := NewHobbyService(users, store.Hobbies, store.Tx)

	owner := &domain.User{Name: "Famous"}
	require.NoError(t, store.Users.Create(ctx, owner))

	_, err := hobbies.Create(ctx, owner.ID, domain.Hobby{Name: "Singing", Year: 2020})
	assert.ErrorIs(t, err, errStoreDown)

	// without a transactional backend the hobby write has already landed
	stored, err := store.Hobbies.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
