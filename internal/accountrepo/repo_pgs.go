// Package accountrepo manages repository layer of accounts.
package accountrepo

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

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (id, name, created_at, updated_at)
VALUES
    ($1, $2, $3, $4)
RETURNING id, name, created_at, updated_at
`

// Create persists the account row and then returns it. The account's user
// links are written separately via AddUser.
func (r *RepoPGS) Create(ctx context.Context, a domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, a.ID, a.Name, a.CreatedAt, a.UpdatedAt)

	var created domain.Account

	err := row.Scan(&created.ID, &created.Name, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		l.Error().Err(err).Send()
		return created, apperrors.Unknown(err)
	}

	created.Users = []domain.User{}

	return created, nil
}

const addUserQuery = `
INSERT INTO
    user_accounts (user_id, account_id)
VALUES
    ($1, $2)
`

// AddUser writes one join record linking the user to the account.
func (r *RepoPGS) AddUser(ctx context.Context, accountID, userID uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, addUserQuery, userID, accountID)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "user_accounts_user_id_fkey":
				return apperrors.NotFound("user", "id", userID)
			case "user_accounts_account_id_fkey":
				return apperrors.NotFound("account", "id", accountID)
			case "user_accounts_pkey":
				return apperrors.AlreadyExists("account user link", "")
			}
		}

		return apperrors.Unknown(err)
	}

	return nil
}

const getQuery = `
SELECT
	id, name, created_at, updated_at
FROM accounts
WHERE id = $1
`

const usersForAccountsQuery = `
SELECT
	ua.account_id,
	u.id, u.name, u.email, u.password, u.cpf, u.created_at, u.updated_at
FROM user_accounts ua
JOIN users u ON u.id = ua.user_id
WHERE ua.account_id = ANY($1)
ORDER BY u.created_at, u.id
`

// Get returns the account with the given id including its linked users.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, apperrors.NotFound("account", "id", id)
		}

		l.Error().Err(err).Send()

		return a, apperrors.Unknown(err)
	}

	usersByAccount, err := r.usersFor(ctx, []uuid.UUID{a.ID})
	if err != nil {
		return a, err
	}

	a.Users = usersByAccount[a.ID]
	if a.Users == nil {
		a.Users = []domain.User{}
	}

	return a, nil
}

const listQuery = `
SELECT
	id, name, created_at, updated_at,
	count(*) OVER() AS total
FROM accounts
WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
  AND ($2::timestamptz IS NULL OR created_at >= $2)
  AND ($3::timestamptz IS NULL OR updated_at >= $3)
ORDER BY created_at, id
LIMIT $4 OFFSET $5
`

// List returns one page of accounts, each with its linked users, and the
// total count. The page rows and the count come from a single round trip;
// the users of the page are fetched in one extra query.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListAccountsParams) ([]domain.Account, int, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery,
		arg.Name, arg.CreatedAt, arg.UpdatedAt, arg.Limit, arg.Offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, 0, apperrors.Unknown(err)
	}
	defer rows.Close()

	items := []domain.Account{}
	ids := []uuid.UUID{}
	total := 0

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt, &total); err != nil {
			l.Error().Err(err).Send()
			return nil, 0, apperrors.Unknown(err)
		}

		a.Users = []domain.User{}
		items = append(items, a)
		ids = append(ids, a.ID)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, 0, apperrors.Unknown(err)
	}

	if len(ids) == 0 {
		return items, total, nil
	}

	usersByAccount, err := r.usersFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	for i := range items {
		if users, ok := usersByAccount[items[i].ID]; ok {
			items[i].Users = users
		}
	}

	return items, total, nil
}

const updateQuery = `
UPDATE accounts
SET name = $2, updated_at = $3
WHERE id = $1
RETURNING id, name, created_at, updated_at
`

// Update renames the account and returns the stored row without users.
func (r *RepoPGS) Update(ctx context.Context, a domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, a.ID, a.Name, a.UpdatedAt)

	var updated domain.Account

	err := row.Scan(&updated.ID, &updated.Name, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return updated, apperrors.NotFound("account", "id", a.ID)
		}

		l.Error().Err(err).Send()

		return updated, apperrors.Unknown(err)
	}

	updated.Users = []domain.User{}

	return updated, nil
}

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
`

// Delete removes the account with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id uuid.UUID) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, deleteQuery, id); err != nil {
		l.Error().Err(err).Send()
		return apperrors.Unknown(err)
	}

	return nil
}

func (r *RepoPGS) usersFor(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID][]domain.User, error) {
	l := zerolog.Ctx(ctx)

	ids := make([]string, len(accountIDs))
	for i, id := range accountIDs {
		ids[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, usersForAccountsQuery, pq.Array(ids))
	if err != nil {
		l.Error().Err(err).Send()
		return nil, apperrors.Unknown(err)
	}
	defer rows.Close()

	byAccount := map[uuid.UUID][]domain.User{}

	for rows.Next() {
		var (
			accountID uuid.UUID
			u         domain.User
		)

		if err := rows.Scan(&accountID, &u.ID, &u.Name, &u.Email, &u.Password, &u.CPF,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, apperrors.Unknown(err)
		}

		byAccount[accountID] = append(byAccount[accountID], u)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, apperrors.Unknown(err)
	}

	return byAccount, nil
}
