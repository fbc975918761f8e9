// Package sessiondelivery manages delivery layer of sessions.
package sessiondelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-finbook/finbook/internal/sessionservice"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/web"
)

// Service provides service layer interface needed by session delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package sessiondelivery
type Service interface {
	Login(ctx context.Context, arg sessionservice.LoginParams) either.Either[*apperrors.Error, sessionservice.Tokens]
	Refresh(ctx context.Context, arg sessionservice.RefreshParams) either.Either[*apperrors.Error, sessionservice.Tokens]
}

// Handler facilitates session delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns session handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

// Login handles http request to authenticate a user.
func (h *Handler) Login(gctx *gin.Context) {
	var req sessionservice.LoginParams
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	web.Respond(gctx, h.service.Login(gctx.Request.Context(), req), http.StatusOK)
}

// Refresh handles http request to renew an access token.
func (h *Handler) Refresh(gctx *gin.Context) {
	var req sessionservice.RefreshParams
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	web.Respond(gctx, h.service.Refresh(gctx.Request.Context(), req), http.StatusOK)
}
