// Package sessionservice manages authentication sessions and token issuance.
package sessionservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/configpkg"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/passpkg"
	"github.com/go-finbook/finbook/pkg/tokenpkg"
	"github.com/go-finbook/finbook/pkg/usecase"
)

// UserGetter provides the user lookup needed to verify credentials.
//
//go:generate mockgen -source service.go -destination service_mock.go -package sessionservice
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// Service facilitates session service layer logic.
type Service struct {
	users      UserGetter
	tokenMaker tokenpkg.Maker
	config     configpkg.Config
}

// New returns session service struct to manage session business logic.
func New(ug UserGetter, config configpkg.Config, tm tokenpkg.Maker) *Service {
	return &Service{
		users:      ug,
		tokenMaker: tm,
		config:     config,
	}
}

// Tokens is a pair of signed tokens returned on login and refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginParams holds the accepted input for Login.
type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies the credentials and issues an access and a refresh token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, arg LoginParams) either.Either[*apperrors.Error, Tokens] {
	return usecase.Run(ctx, arg, s.login)
}

func (s *Service) login(ctx context.Context, arg LoginParams) either.Either[*apperrors.Error, Tokens] {
	l := zerolog.Ctx(ctx)

	user, err := s.users.GetByEmail(ctx, arg.Email)
	if err != nil {
		if apperrors.Convert(err).Kind() == apperrors.KindNotFound {
			return usecase.Fail[Tokens](apperrors.AuthFailed())
		}

		return usecase.FailWith[Tokens](err)
	}

	if err := passpkg.Check(arg.Password, user.Password); err != nil {
		l.Warn().Err(err).Send()
		return usecase.Fail[Tokens](apperrors.AuthFailed())
	}

	accessToken, _, err := s.tokenMaker.CreateToken(user.ID.String(), s.config.AccessTokenDuration, false)
	if err != nil {
		return usecase.FailWith[Tokens](err)
	}

	refreshToken, _, err := s.tokenMaker.CreateToken(user.ID.String(), s.config.RefreshTokenDuration, true)
	if err != nil {
		return usecase.FailWith[Tokens](err)
	}

	return usecase.OK(Tokens{AccessToken: accessToken, RefreshToken: refreshToken})
}

// RefreshParams holds the accepted input for Refresh.
type RefreshParams struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// refresh token itself is returned unchanged.
func (s *Service) Refresh(ctx context.Context, arg RefreshParams) either.Either[*apperrors.Error, Tokens] {
	return usecase.Run(ctx, arg, s.refresh)
}

func (s *Service) refresh(ctx context.Context, arg RefreshParams) either.Either[*apperrors.Error, Tokens] {
	payload, err := s.tokenMaker.VerifyToken(arg.RefreshToken)
	if err != nil {
		return usecase.Fail[Tokens](apperrors.InvalidToken())
	}

	if !payload.Refresh {
		return usecase.Fail[Tokens](apperrors.InvalidToken())
	}

	accessToken, _, err := s.tokenMaker.CreateToken(payload.UserID, s.config.AccessTokenDuration, false)
	if err != nil {
		return usecase.FailWith[Tokens](err)
	}

	return usecase.OK(Tokens{AccessToken: accessToken, RefreshToken: arg.RefreshToken})
}
