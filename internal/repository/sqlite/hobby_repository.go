package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"user-hobbies/internal/domain"
	"user-hobbies/internal/repository"
)

const createHobbiesTable = `
CREATE TABLE IF NOT EXISTS hobbies (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	passion_level INTEGER NOT NULL CHECK (passion_level BETWEEN 0 AND 3),
	year INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type HobbyRepository struct {
	db *sql.DB
}

func NewHobbyRepository(db *sql.DB) *HobbyRepository {
	return &HobbyRepository{db: db}
}

func (r *HobbyRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createHobbiesTable); err != nil {
		return fmt.Errorf("create hobbies table: %w", err)
	}
	return nil
}

func (r *HobbyRepository) Create(ctx context.Context, hobby *domain.Hobby) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := conn(ctx, r.db).ExecContext(ctx, `
INSERT INTO hobbies (id, name, passion_level, year, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		hobby.Name,
		int(hobby.PassionLevel),
		hobby.Year,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("insert hobby: %w", err)
	}
	hobby.ID = id
	return nil
}

func (r *HobbyRepository) Get(ctx context.Context, id string) (*domain.Hobby, error) {
	row := conn(ctx, r.db).QueryRowContext(ctx, `
SELECT id, name, passion_level, year
FROM hobbies
WHERE id = ?`,
		id,
	)
	return scanHobby(row)
}

func (r *HobbyRepository) List(ctx context.Context) ([]domain.Hobby, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, `
SELECT id, name, passion_level, year
FROM hobbies
ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list hobbies: %w", err)
	}
	defer rows.Close()

	hobbies := []domain.Hobby{}
	for rows.Next() {
		hobby, err := scanHobby(rows)
		if err != nil {
			return nil, err
		}
		hobbies = append(hobbies, *hobby)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hobbies: %w", err)
	}
	return hobbies, nil
}

func (r *HobbyRepository) Update(ctx context.Context, id string, patch domain.HobbyPatch) (*domain.Hobby, error) {
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
	if patch.PassionLevel != nil {
		sets = append(sets, "passion_level=?")
		args = append(args, int(*patch.PassionLevel))
	}
	if patch.Year != nil {
		sets = append(sets, "year=?")
		args = append(args, *patch.Year)
	}
	sets = append(sets, "updated_at=?")
	args = append(args, time.Now().UTC(), id)

	res, err := conn(ctx, r.db).ExecContext(ctx,
		"UPDATE hobbies SET "+strings.Join(sets, ", ")+" WHERE id=?",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update hobby: %w", err)
	}
	if err := expectRow(res, "hobby", id); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func (r *HobbyRepository) Delete(ctx context.Context, id string) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM hobbies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete hobby: %w", err)
	}
	return expectRow(res, "hobby", id)
}

func scanHobby(row interface {
	Scan(dest ...any) error
}) (*domain.Hobby, error) {
	var (
		hobby domain.Hobby
		level int
	)
	if err := row.Scan(
		&hobby.ID,
		&hobby.Name,
		&level,
		&hobby.Year,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("hobby: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan hobby: %w", err)
	}
	hobby.PassionLevel = domain.PassionLevel(level)
	return &hobby, nil
}

var _ repository.HobbyRepository = (*HobbyRepository)(nil)
