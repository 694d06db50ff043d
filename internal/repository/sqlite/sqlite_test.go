package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
	"user-hobbies/internal/repository/repositorytest"
)

func openTestStore(t *testing.T) repository.Store {
	t.Helper()
	store, err := OpenStore(context.Background(), filepath.Join(t.TempDir(), "hobbies.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestStore(t *testing.T) {
	repositorytest.Run(t, openTestStore)
}

func TestTransactionCommits(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	user := &domain.User{Name: "Famous"}
	require.NoError(t, store.Users.Create(ctx, user))

	var hobby domain.Hobby
	err := store.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		hobby = domain.Hobby{Name: "Singing", Year: 2020}
		if err := store.Hobbies.Create(ctx, &hobby); err != nil {
			return err
		}
		ids := []string{hobby.ID}
		_, err := store.Users.Update(ctx, user.ID, domain.UserPatch{Hobbies: &ids})
		return err
	})
	require.NoError(t, err)

	got, err := store.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{hobby.ID}, got.Hobbies)
}

func TestPassionLevelConstraint(t *testing.T) {
	store := openTestStore(t)
	err := store.Hobbies.Create(context.Background(), &domain.Hobby{Name: "Bad", PassionLevel: 7, Year: 2020})
	assert.Error(t, err)
}
