package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	hobbies TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	hobbies, err := encodeIDs(user.Hobbies)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = conn(ctx, r.db).ExecContext(ctx, `
INSERT INTO users (id, name, hobbies, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		id,
		user.Name,
		hobbies,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
SELECT id, name, hobbies
FROM users
WHERE id = ?`,
		id,
	)
	return scanUser(row)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
SELECT id, name, hobbies
FROM users
ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return r.Get(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	if patch.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *patch.Name)
	}
	if patch.Hobbies != nil {
		hobbies, err := encodeIDs(*patch.Hobbies)
		if err != nil {
			return nil, err
		}
		sets = append(sets, "hobbies=?")
		args = append(args, hobbies)
	}
	sets = append(sets, "updated_at=?")
	args = append(args, time.Now().UTC(), id)

	res, err := conn(ctx, r.db).ExecContext(ctx,
		"UPDATE users SET "+strings.Join(sets, ", ")+" WHERE id=?",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if err := expectRow(res, "user", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return expectRow(res, "user", id)
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var (
		user    domain.User
		hobbies string
	)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&hobbies,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	if err := json.Unmarshal([]byte(hobbies), &user.Hobbies); err != nil {
		return nil, fmt.Errorf("decode user hobbies: %w", err)
	}
	if user.Hobbies == nil {
		user.Hobbies = []string{}
	}
	return &user, nil
}

func encodeIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encode hobby ids: %w", err)
	}
	return string(b), nil
}

func expectRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, repository.ErrNotFound)
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
