// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/dbpkg"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    users (id, name, email, password, cpf, created_at, updated_at)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, email, password, cpf, created_at, updated_at
`

// Create persists the user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, u domain.User) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		u.ID, u.Name, u.Email, u.Password, u.CPF, u.CreatedAt, u.UpdatedAt)

	var created domain.User

	err := scanUser(row, &created)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "users_email_key" {
				return created, apperrors.AlreadyExists("user", "email")
			}
		}

		return created, apperrors.Unknown(err)
	}

	return created, nil
}

const getQuery = `
SELECT
	id, name, email, password, cpf, created_at, updated_at
FROM users
WHERE id = $1
`

// Get returns the user with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var u domain.User

	err := scanUser(row, &u)
	if err != nil {
		if err == sql.ErrNoRows {
			return u, apperrors.NotFound("user", "id", id)
		}

		l.Error().Err(err).Send()

		return u, apperrors.Unknown(err)
	}

	return u, nil
}

const getByEmailQuery = `
SELECT
	id, name, email, password, cpf, created_at, updated_at
FROM users
WHERE email = $1
`

// GetByEmail returns the user with the given email.
func (r *RepoPGS) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByEmailQuery, email)

	var u domain.User

	err := scanUser(row, &u)
	if err != nil {
		if err == sql.ErrNoRows {
			return u, apperrors.NotFound("user", "email", email)
		}

		l.Error().Err(err).Send()

		return u, apperrors.Unknown(err)
	}

	return u, nil
}

const listQuery = `
SELECT
	id, name, email, password, cpf, created_at, updated_at,
	count(*) OVER() AS total
FROM users
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
  AND ($2 = '' OR email ILIKE '%' || $2 || '%')
  AND ($3::timestamptz IS NULL OR created_at >= $3)
  AND ($4::timestamptz IS NULL OR updated_at >= $4)
ORDER BY created_at, id
LIMIT $5 OFFSET $6
`

// List returns one page of users matching the filters and the total count.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListUsersParams) ([]domain.User, int, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery,
		arg.Name, arg.Email, arg.CreatedAt, arg.UpdatedAt, arg.Limit, arg.Offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, 0, apperrors.Unknown(err)
	}
	defer rows.Close()

	items := []domain.User{}
	total := 0

	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CPF,
			&u.CreatedAt, &u.UpdatedAt, &total); err != nil {
			l.Error().Err(err).Send()
			return nil, 0, apperrors.Unknown(err)
		}

		items = append(items, u)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, 0, apperrors.Unknown(err)
	}

	return items, total, nil
}

const updateQuery = `
UPDATE users
SET name = $2, email = $3, password = $4, updated_at = $5
WHERE id = $1
RETURNING id, name, email, password, cpf, created_at, updated_at
`

// Update persists the user's mutable fields and returns the stored row.
func (r *RepoPGS) Update(ctx context.Context, u domain.User) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, u.ID, u.Name, u.Email, u.Password, u.UpdatedAt)

	var updated domain.User

	err := scanUser(row, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return updated, apperrors.NotFound("user", "id", u.ID)
		}

		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "users_email_key" {
				return updated, apperrors.AlreadyExists("user", "email")
			}
		}

		return updated, apperrors.Unknown(err)
	}

	return updated, nil
}

const deleteQuery = `
DELETE FROM users
WHERE id = $1
`

// Delete removes the user with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteQuery, id); err != nil {
		l.Error().Err(err).Send()
		return apperrors.Unknown(err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, u *domain.User) error {
	return row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CPF, &u.CreatedAt, &u.UpdatedAt)
}
