// Package transactionrepo manages repository layer of transactions.
package transactionrepo

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

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns transaction RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    transactions (id, amount, description, account_id, created_at, updated_at)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, amount, description, account_id, created_at, updated_at
`

// Create persists the transaction and then returns it.
func (r *RepoPGS) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		t.ID, t.Amount, t.Description, t.AccountID, t.CreatedAt, t.UpdatedAt)

	var created domain.Transaction

	err := scanTransaction(row, &created)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "transactions_account_id_fkey" {
				return created, apperrors.NotFound("account", "id", t.AccountID)
			}
		}

		return created, apperrors.Unknown(err)
	}

	return created, nil
}

const getQuery = `
SELECT
	id, amount, description, account_id, created_at, updated_at
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.Transaction

	err := scanTransaction(row, &t)
	if err != nil {
		if err == sql.ErrNoRows {
			return t, apperrors.NotFound("transaction", "id", id)
		}

		l.Error().Err(err).Send()

		return t, apperrors.Unknown(err)
	}

	return t, nil
}

const listQuery = `
SELECT
	id, amount, description, account_id, created_at, updated_at,
	count(*) OVER() AS total
FROM transactions
WHERE account_id = $1
  AND ($2 = '' OR description ILIKE '%' || $2 || '%')
  AND ($3::timestamptz IS NULL OR created_at >= $3)
  AND ($4::timestamptz IS NULL OR updated_at >= $4)
ORDER BY created_at, id
LIMIT $5 OFFSET $6
`

// List returns one page of the account's transactions and the total count.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, int, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery,
		arg.AccountID, arg.Description, arg.CreatedAt, arg.UpdatedAt, arg.Limit, arg.Offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, 0, apperrors.Unknown(err)
	}
	defer rows.Close()

	items := []domain.Transaction{}
	total := 0

	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.Amount, &t.Description, &t.AccountID,
			&t.CreatedAt, &t.UpdatedAt, &total); err != nil {
			l.Error().Err(err).Send()
			return nil, 0, apperrors.Unknown(err)
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, 0, apperrors.Unknown(err)
	}

	return items, total, nil
}

const updateQuery = `
UPDATE transactions
SET amount = $2, description = $3, updated_at = $4
WHERE id = $1
RETURNING id, amount, description, account_id, created_at, updated_at
`

// Update persists the transaction's mutable fields and returns the stored row.
func (r *RepoPGS) Update(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, t.ID, t.Amount, t.Description, t.UpdatedAt)

	var updated domain.Transaction

	err := scanTransaction(row, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return updated, apperrors.NotFound("transaction", "id", t.ID)
		}

		l.Error().Err(err).Send()

		return updated, apperrors.Unknown(err)
	}

	return updated, nil
}

const deleteQuery = `
DELETE FROM transactions
WHERE id = $1
`

// Delete removes the transaction with the given id.
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

func scanTransaction(row rowScanner, t *domain.Transaction) error {
	return row.Scan(&t.ID, &t.Amount, &t.Description, &t.AccountID, &t.CreatedAt, &t.UpdatedAt)
}
