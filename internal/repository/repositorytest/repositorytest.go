// Package repositorytest holds behaviour checks shared by every store
// backend.
package repositorytest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

// Run exercises a backend. newStore must return an empty store each call.
func Run(t *testing.T, newStore func(t *testing.T) repository.Store) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("hobbies", func(t *testing.T) { testHobbies(t, newStore(t)) })
	t.Run("transaction rollback", func(t *testing.T) { testTransaction(t, newStore(t)) })
}

func testUsers(t *testing.T, store repository.Store) {
	ctx := context.Background()

	users, err := store.Users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	famous := &domain.User{Name: "Famous", Hobbies: []string{}}
	require.NoError(t, store.Users.Create(ctx, famous))
	require.NotEmpty(t, famous.ID)

	other := &domain.User{Name: "Other"}
	require.NoError(t, store.Users.Create(ctx, other))
	assert.NotEqual(t, famous.ID, other.ID)

	got, err := store.Users.Get(ctx, famous.ID)
	require.NoError(t, err)
	assert.Equal(t, "Famous", got.Name)
	assert.Empty(t, got.Hobbies)

	name := "John"
	hobbies := []string{"h1", "h2"}
	updated, err := store.Users.Update(ctx, famous.ID, domain.UserPatch{Name: &name, Hobbies: &hobbies})
	require.NoError(t, err)
	assert.Equal(t, famous.ID, updated.ID)
	assert.Equal(t, "John", updated.Name)
	assert.Equal(t, []string{"h1", "h2"}, updated.Hobbies)

	unchanged, err := store.Users.Update(ctx, famous.ID, domain.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, updated, unchanged)

	users, err = store.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, famous.ID, users[0].ID)
	assert.Equal(t, other.ID, users[1].ID)

	require.NoError(t, store.Users.Delete(ctx, famous.ID))
	_, err = store.Users.Get(ctx, famous.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.Users.Delete(ctx, famous.ID), repository.ErrNotFound)
	_, err = store.Users.Update(ctx, famous.ID, domain.UserPatch{Name: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testHobbies(t *testing.T, store repository.Store) {
	ctx := context.Background()

	singing := &domain.Hobby{Name: "Singing", PassionLevel: domain.PassionLow, Year: 2020}
	require.NoError(t, store.Hobbies.Create(ctx, singing))
	require.NotEmpty(t, singing.ID)

	dancing := &domain.Hobby{Name: "Dancing", PassionLevel: domain.PassionMedium, Year: 2021}
	require.NoError(t, store.Hobbies.Create(ctx, dancing))

	got, err := store.Hobbies.Get(ctx, singing.ID)
	require.NoError(t, err)
	assert.Equal(t, *singing, *got)

	name := "Gaming"
	level := domain.PassionVeryHigh
	updated, err := store.Hobbies.Update(ctx, singing.ID, domain.HobbyPatch{Name: &name, PassionLevel: &level})
	require.NoError(t, err)
	assert.Equal(t, "Gaming", updated.Name)
	assert.Equal(t, domain.PassionVeryHigh, updated.PassionLevel)
	assert.Equal(t, int64(2020), updated.Year)

	hobbies, err := store.Hobbies.List(ctx)
	require.NoError(t, err)
	require.Len(t, hobbies, 2)
	assert.Equal(t, singing.ID, hobbies[0].ID)
	assert.Equal(t, dancing.ID, hobbies[1].ID)

	require.NoError(t, store.Hobbies.Delete(ctx, singing.ID))
	_, err = store.Hobbies.Get(ctx, singing.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.Hobbies.Delete(ctx, singing.ID), repository.ErrNotFound)
}

var errAbort = errors.New("abort")

// testTransaction checks that a failed unit of work returns its error. For
// transactional backends the writes inside it must also be gone.
func testTransaction(t *testing.T, store repository.Store) {
	ctx := context.Background()

	var created domain.Hobby
	err := store.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created = domain.Hobby{Name: "Knitting", PassionLevel: domain.PassionHigh, Year: 1999}
		if err := store.Hobbies.Create(ctx, &created); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	if store.Tx == repository.NoTransaction {
		return
	}
	_, err = store.Hobbies.Get(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
