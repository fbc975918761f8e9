// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/usecase"
	"github.com/go-finbook/finbook/pkg/web"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, a domain.Account) (domain.Account, error)
	AddUser(ctx context.Context, accountID, userID uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (domain.Account, error)
	List(ctx context.Context, arg domain.ListAccountsParams) ([]domain.Account, int, error)
	Update(ctx context.Context, a domain.Account) (domain.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserGetter resolves the users attached to an account at creation time.
type UserGetter interface {
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo  Repo
	users UserGetter
}

// New returns account service struct to manage account business logic.
func New(ar Repo, ug UserGetter) *Service {
	return &Service{
		repo:  ar,
		users: ug,
	}
}

// CreateParams holds the accepted input for Create.
type CreateParams struct {
	Name    string   `json:"name" validate:"required"`
	UserIDs []string `json:"usersIds" validate:"omitempty,dive,uuid"`
}

// Create persists a new account and links every given user to it. All user
// ids are resolved before anything is written, so an unknown id aborts the
// whole operation.
func (s *Service) Create(ctx context.Context, arg CreateParams) either.Either[*apperrors.Error, domain.Account] {
	return usecase.Run(ctx, arg, s.create)
}

func (s *Service) create(ctx context.Context, arg CreateParams) either.Either[*apperrors.Error, domain.Account] {
	users := make([]domain.User, 0, len(arg.UserIDs))

	for _, id := range arg.UserIDs {
		user, err := s.users.Get(ctx, uuid.MustParse(id))
		if err != nil {
			return usecase.FailWith[domain.Account](err)
		}

		users = append(users, user)
	}

	account, err := s.repo.Create(ctx, domain.NewAccount(arg.Name, users))
	if err != nil {
		return usecase.FailWith[domain.Account](err)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		linkErr error
	)

	for _, user := range users {
		wg.Add(1)

		go func(userID uuid.UUID) {
			defer wg.Done()

			if err := s.repo.AddUser(ctx, account.ID, userID); err != nil {
				mu.Lock()
				if linkErr == nil {
					linkErr = err
				}
				mu.Unlock()
			}
		}(user.ID)
	}

	wg.Wait()

	if linkErr != nil {
		return usecase.FailWith[domain.Account](linkErr)
	}

	account.Users = users

	return usecase.OK(account)
}

// GetParams holds the accepted input for Get and Delete.
type GetParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

// Get returns the account with the given id together with its users.
func (s *Service) Get(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.Account] {
	return usecase.Run(ctx, arg, s.get)
}

func (s *Service) get(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.Account] {
	got, err := s.repo.Get(ctx, uuid.MustParse(arg.ID))
	if err != nil {
		return usecase.FailWith[domain.Account](err)
	}

	return usecase.OK(got)
}

// ListParams holds the accepted input for List.
type ListParams struct {
	Page      int    `json:"page" validate:"omitempty,min=1"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt" validate:"omitempty,datetime=2006-01-02"`
	UpdatedAt string `json:"updatedAt" validate:"omitempty,datetime=2006-01-02"`
}

// List returns a page of accounts matching the optional name filter.
func (s *Service) List(ctx context.Context, arg ListParams) either.Either[*apperrors.Error, web.Paginated[domain.Account]] {
	return usecase.Run(ctx, arg, s.list)
}

func (s *Service) list(ctx context.Context, arg ListParams) either.Either[*apperrors.Error, web.Paginated[domain.Account]] {
	page, limit := web.PageDefaults(arg.Page, arg.Limit)

	accounts, total, err := s.repo.List(ctx, domain.ListAccountsParams{
		Limit:     limit,
		Offset:    (page - 1) * limit,
		Name:      arg.Name,
		CreatedAt: domain.FilterTime(arg.CreatedAt),
		UpdatedAt: domain.FilterTime(arg.UpdatedAt),
	})
	if err != nil {
		return usecase.FailWith[web.Paginated[domain.Account]](err)
	}

	return usecase.OK(web.NewPaginated(accounts, page, limit, total))
}

// UpdateParams holds the accepted input for Update.
type UpdateParams struct {
	ID   string `json:"id" validate:"required,uuid"`
	Name string `json:"name" validate:"required"`
}

// Update renames the account.
func (s *Service) Update(ctx context.Context, arg UpdateParams) either.Either[*apperrors.Error, domain.Account] {
	return usecase.Run(ctx, arg, s.update)
}

func (s *Service) update(ctx context.Context, arg UpdateParams) either.Either[*apperrors.Error, domain.Account] {
	account, err := s.repo.Get(ctx, uuid.MustParse(arg.ID))
	if err != nil {
		return usecase.FailWith[domain.Account](err)
	}

	account.Name = arg.Name
	account.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, account)
	if err != nil {
		return usecase.FailWith[domain.Account](err)
	}

	updated.Users = account.Users

	return usecase.OK(updated)
}

// Delete removes the account and returns its last state.
func (s *Service) Delete(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.Account] {
	return usecase.Run(ctx, arg, s.delete)
}

func (s *Service) delete(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.Account] {
	account, err := s.repo.Get(ctx, uuid.MustParse(arg.ID))
	if err != nil {
		return usecase.FailWith[domain.Account](err)
	}

	if err := s.repo.Delete(ctx, account.ID); err != nil {
		return usecase.FailWith[domain.Account](err)
	}

	return usecase.OK(account)
}
