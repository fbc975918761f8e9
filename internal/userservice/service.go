// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/passpkg"
	"github.com/go-finbook/finbook/pkg/usecase"
	"github.com/go-finbook/finbook/pkg/web"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	List(ctx context.Context, arg domain.ListUsersParams) ([]domain.User, int, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New returns user service struct to manage user business logic.
func New(ur Repo) *Service {
	return &Service{
		repo: ur,
	}
}

// CreateParams holds the accepted input for Create.
type CreateParams struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	CPF      string `json:"cpf" validate:"required,cpf"`
}

// Create registers a new user with a hashed password.
func (s *Service) Create(ctx context.Context, arg CreateParams) either.Either[*apperrors.Error, domain.User] {
	return usecase.Run(ctx, arg, s.create)
}

func (s *Service) create(ctx context.Context, arg CreateParams) either.Either[*apperrors.Error, domain.User] {
	l := zerolog.Ctx(ctx)

	if msg := passpkg.CheckRules(arg.Password); msg != "" {
		return usecase.Fail[domain.User](apperrors.FieldValidation("password", msg))
	}

	if _, err := s.repo.GetByEmail(ctx, arg.Email); err == nil {
		return usecase.Fail[domain.User](apperrors.AlreadyExists("user", "email"))
	} else if apperrors.Convert(err).Kind() != apperrors.KindNotFound {
		return usecase.FailWith[domain.User](err)
	}

	hashedPassword, err := passpkg.Hash(arg.Password)
	if err != nil {
		l.Error().Err(err).Send()
		return usecase.FailWith[domain.User](err)
	}

	created, err := s.repo.Create(ctx, domain.NewUser(arg.Name, arg.Email, hashedPassword, arg.CPF))
	if err != nil {
		return usecase.FailWith[domain.User](err)
	}

	return usecase.OK(created)
}

// GetParams holds the accepted input for Get and Delete.
type GetParams struct {
	ID string `json:"id" validate:"required,uuid"`
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.User] {
	return usecase.Run(ctx, arg, s.get)
}

func (s *Service) get(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.User] {
	got, err := s.repo.Get(ctx, uuid.MustParse(arg.ID))
	if err != nil {
		return usecase.FailWith[domain.User](err)
	}

	return usecase.OK(got)
}

// ListParams holds the accepted input for List.
type ListParams struct {
	Page      int    `json:"page" validate:"omitempty,min=1"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt" validate:"omitempty,datetime=2006-01-02"`
	UpdatedAt string `json:"updatedAt" validate:"omitempty,datetime=2006-01-02"`
}

// List returns a page of users matching the optional name and email filters.
func (s *Service) List(ctx context.Context, arg ListParams) either.Either[*apperrors.Error, web.Paginated[domain.User]] {
	return usecase.Run(ctx, arg, s.list)
}

func (s *Service) list(ctx context.Context, arg ListParams) either.Either[*apperrors.Error, web.Paginated[domain.User]] {
	page, limit := web.PageDefaults(arg.Page, arg.Limit)

	users, total, err := s.repo.List(ctx, domain.ListUsersParams{
		Limit:     limit,
		Offset:    (page - 1) * limit,
		Name:      arg.Name,
		Email:     arg.Email,
		CreatedAt: domain.FilterTime(arg.CreatedAt),
		UpdatedAt: domain.FilterTime(arg.UpdatedAt),
	})
	if err != nil {
		return usecase.FailWith[web.Paginated[domain.User]](err)
	}

	return usecase.OK(web.NewPaginated(users, page, limit, total))
}

// UpdateParams holds the accepted input for Update.
type UpdateParams struct {
	ID    string `json:"id" validate:"required,uuid"`
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Update changes the user's name and email, keeping fields left blank.
func (s *Service) Update(ctx context.Context, arg UpdateParams) either.Either[*apperrors.Error, domain.User] {
	return usecase.Run(ctx, arg, s.update)
}

func (s *Service) update(ctx context.Context, arg UpdateParams) either.Either[*apperrors.Error, domain.User] {
	user, err := s.repo.Get(ctx, uuid.MustParse(arg.ID))
	if err != nil {
		return usecase.FailWith[domain.User](err)
	}

	if arg.Email != "" && arg.Email != user.Email {
		owner, err := s.repo.GetByEmail(ctx, arg.Email)
		if err == nil && owner.ID != user.ID {
			return usecase.Fail[domain.User](apperrors.AlreadyExists("user", "email"))
		} else if err != nil && apperrors.Convert(err).Kind() != apperrors.KindNotFound {
			return usecase.FailWith[domain.User](err)
		}

		user.Email = arg.Email
	}

	if arg.Name != "" {
		user.Name = arg.Name
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return usecase.FailWith[domain.User](err)
	}

	return usecase.OK(updated)
}

// Delete removes the user and returns its last state.
func (s *Service) Delete(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.User] {
	return usecase.Run(ctx, arg, s.delete)
}

func (s *Service) delete(ctx context.Context, arg GetParams) either.Either[*apperrors.Error, domain.User] {
	user, err := s.repo.Get(ctx, uuid.MustParse(arg.ID))
	if err != nil {
		return usecase.FailWith[domain.User](err)
	}

	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return usecase.FailWith[domain.User](err)
	}

	return usecase.OK(user)
}

// ChangePasswordParams holds the accepted input for ChangePassword.
type ChangePasswordParams struct {
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// Message is a plain confirmation payload.
type Message struct {
	Message string `json:"message"`
}

// ChangePassword verifies the current credentials and stores a new password hash.
func (s *Service) ChangePassword(ctx context.Context, arg ChangePasswordParams) either.Either[*apperrors.Error, Message] {
	return usecase.Run(ctx, arg, s.changePassword)
}

func (s *Service) changePassword(ctx context.Context, arg ChangePasswordParams) either.Either[*apperrors.Error, Message] {
	l := zerolog.Ctx(ctx)

	if msg := passpkg.CheckRules(arg.NewPassword); msg != "" {
		return usecase.Fail[Message](apperrors.FieldValidation("newPassword", msg))
	}

	user, err := s.repo.GetByEmail(ctx, arg.Email)
	if err != nil {
		if apperrors.Convert(err).Kind() == apperrors.KindNotFound {
			return usecase.Fail[Message](apperrors.AuthFailed())
		}

		return usecase.FailWith[Message](err)
	}

	if err := passpkg.Check(arg.CurrentPassword, user.Password); err != nil {
		l.Warn().Err(err).Send()
		return usecase.Fail[Message](apperrors.AuthFailed())
	}

	hashedPassword, err := passpkg.Hash(arg.NewPassword)
	if err != nil {
		l.Error().Err(err).Send()
		return usecase.FailWith[Message](err)
	}

	user.Password = hashedPassword
	user.UpdatedAt = time.Now().UTC()

	if _, err := s.repo.Update(ctx, user); err != nil {
		return usecase.FailWith[Message](err)
	}

	return usecase.OK(Message{Message: "password updated successfully"})
}
