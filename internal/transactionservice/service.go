// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/moneypkg"
	"github.com/go-finbook/finbook/pkg/usecase"
	"github.com/go-finbook/finbook/pkg/web"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
	List(ctx context.Context, arg domain.ListTransactionsParams) ([]domain.Transaction, int, error)
	Update(ctx context.Context, t domain.Transaction) (domain.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AccountGetter checks that the account a transaction claims actually exists.
type AccountGetter interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Account, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo     Repo
	accounts AccountGetter
}

// New returns transaction service struct to manage transaction business logic.
func New(tr Repo, ag AccountGetter) *Service {
	return &Service{
		repo:     tr,
		accounts: ag,
	}
}

// CreateParams holds the accepted input for Create.
type CreateParams struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description *string         `json:"description"`
	AccountID   string          `json:"accountId" validate:"required,uuid"`
}

// Create records a transaction on an existing account. The amount must be
// strictly positive and carry at most four decimal places.
func (s *Service) Create(ctx context.Context, arg CreateParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	return usecase.Run(ctx, arg, s.create)
}

func (s *Service) create(ctx context.Context, arg CreateParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	amount, err := moneypkg.ParsePositive(arg.Amount)
	if err != nil {
		return usecase.Fail[domain.TransactionResponse](apperrors.FieldValidation("amount", err.Error()))
	}

	accountID := uuid.MustParse(arg.AccountID)

	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return usecase.FailWith[domain.TransactionResponse](err)
	}

	created, err := s.repo.Create(ctx, domain.NewTransaction(amount, arg.Description, accountID))
	if err != nil {
		return usecase.FailWith[domain.TransactionResponse](err)
	}

	return usecase.OK(domain.NewTransactionResponse(created))
}

// GetParams holds the accepted input for Get and Delete.
type GetParams struct {
	ID        string `json:"id" validate:"required,uuid"`
	AccountID string `json:"accountId" validate:"required,uuid"`
}

// Get returns the transaction with the given id, constrained to the claimed
// account. A transaction that belongs to another account is reported as not
// found rather than revealed.
func (s *Service) Get(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	return usecase.Run(ctx, arg, s.get)
}

func (s *Service) get(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	transaction, err := s.find(ctx, arg.ID, arg.AccountID)
	if err != nil {
		return usecase.FailWith[domain.TransactionResponse](err)
	}

	return usecase.OK(domain.NewTransactionResponse(transaction))
}

// ListParams holds the accepted input for List.
type ListParams struct {
	AccountID   string `json:"accountId" validate:"required,uuid"`
	Page        int    `json:"page" validate:"omitempty,min=1"`
	Limit       int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt" validate:"omitempty,datetime=2006-01-02"`
	UpdatedAt   string `json:"updatedAt" validate:"omitempty,datetime=2006-01-02"`
}

// List returns a page of the account's transactions matching the optional
// description filter.
func (s *Service) List(ctx context.Context, arg ListParams) either.Either[*apperrors.Error, web.Paginated[domain.TransactionResponse]] {
	return usecase.Run(ctx, arg, s.list)
}

func (s *Service) list(ctx context.Context, arg ListParams) either.Either[*apperrors.Error, web.Paginated[domain.TransactionResponse]] {
	accountID := uuid.MustParse(arg.AccountID)

	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return usecase.FailWith[web.Paginated[domain.TransactionResponse]](err)
	}

	page, limit := web.PageDefaults(arg.Page, arg.Limit)

	transactions, total, err := s.repo.List(ctx, domain.ListTransactionsParams{
		AccountID:   accountID,
		Limit:       limit,
		Offset:      (page - 1) * limit,
		Description: arg.Description,
		CreatedAt:   domain.FilterTime(arg.CreatedAt),
		UpdatedAt:   domain.FilterTime(arg.UpdatedAt),
	})
	if err != nil {
		return usecase.FailWith[web.Paginated[domain.TransactionResponse]](err)
	}

	responses := make([]domain.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, domain.NewTransactionResponse(t))
	}

	return usecase.OK(web.NewPaginated(responses, page, limit, total))
}

// UpdateParams holds the accepted input for Update.
type UpdateParams struct {
	ID        string           `json:"id" validate:"required,uuid"`
	AccountID string           `json:"accountId" validate:"required,uuid"`
	Amount    *decimal.Decimal `json:"amount"`
	// Description nil keeps the stored value; ClearDescription resets it to null.
	Description      *string `json:"description"`
	ClearDescription bool    `json:"-"`
}

// Update changes the transaction's amount and description, keeping fields
// left out of the input.
func (s *Service) Update(ctx context.Context, arg UpdateParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	return usecase.Run(ctx, arg, s.update)
}

func (s *Service) update(ctx context.Context, arg UpdateParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	transaction, err := s.find(ctx, arg.ID, arg.AccountID)
	if err != nil {
		return usecase.FailWith[domain.TransactionResponse](err)
	}

	if arg.Amount != nil {
		amount, err := moneypkg.ParsePositive(*arg.Amount)
		if err != nil {
			return usecase.Fail[domain.TransactionResponse](apperrors.FieldValidation("amount", err.Error()))
		}

		transaction.Amount = amount
	}

	switch {
	case arg.ClearDescription:
		transaction.Description = nil
	case arg.Description != nil:
		transaction.Description = arg.Description
	}

	transaction.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, transaction)
	if err != nil {
		return usecase.FailWith[domain.TransactionResponse](err)
	}

	return usecase.OK(domain.NewTransactionResponse(updated))
}

// Delete removes the transaction and returns its last state.
func (s *Service) Delete(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	return usecase.Run(ctx, arg, s.delete)
}

func (s *Service) delete(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.TransactionResponse] {
	transaction, err := s.find(ctx, arg.ID, arg.AccountID)
	if err != nil {
		return usecase.FailWith[domain.TransactionResponse](err)
	}

	if err := s.repo.Delete(ctx, transaction.ID); err != nil {
		return usecase.FailWith[domain.TransactionResponse](err)
	}

	return usecase.OK(domain.NewTransactionResponse(transaction))
}

// find fetches a transaction and hides it when the claimed account does not
// own it.
func (s *Service) find(ctx context.Context, id, accountID string) (domain.Transaction, error) {
	transaction, err := s.repo.Get(ctx, uuid.MustParse(id))
	if err != nil {
		return domain.Transaction{}, err
	}

	if transaction.AccountID != uuid.MustParse(accountID) {
		return domain.Transaction{}, apperrors.NotFound("transaction", "id", id)
	}

	return transaction, nil
}
