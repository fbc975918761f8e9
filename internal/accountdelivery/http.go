// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-finbook/finbook/internal/accountservice"
	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg accountservice.CreateParams) either.Either[*apperrors.Error, domain.Account]
	Get(ctx context.Context, arg accountservice.GetParams) either.Either[*apperrors.Error, domain.Account]
	List(ctx context.Context, arg accountservice.ListParams) either.Either[*apperrors.Error, web.Paginated[domain.Account]]
	Update(ctx context.Context, arg accountservice.UpdateParams) either.Either[*apperrors.Error, domain.Account]
	Delete(ctx context.Context, arg accountservice.GetParams) either.Either[*apperrors.Error, domain.Account]
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

// Create handles http request to create an account.
func (h *Handler) Create(gctx *gin.Context) {
	var req accountservice.CreateParams
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	web.Respond(gctx, h.service.Create(gctx.Request.Context(), req), http.StatusCreated)
}

// Get handles http request to get an account by id.
func (h *Handler) Get(gctx *gin.Context) {
	arg := accountservice.GetParams{ID: gctx.Param("accountId")}

	web.Respond(gctx, h.service.Get(gctx.Request.Context(), arg), http.StatusOK)
}

type listRequest struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Name      string `form:"name"`
	CreatedAt string `form:"createdAt"`
	UpdatedAt string `form:"updatedAt"`
}

// List handles http request to list accounts.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	arg := accountservice.ListParams{
		Page:      req.Page,
		Limit:     req.Limit,
		Name:      req.Name,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}

	web.Respond(gctx, h.service.List(gctx.Request.Context(), arg), http.StatusOK)
}

type updateRequest struct {
	Name string `json:"name"`
}

// Update handles http request to rename an account.
func (h *Handler) Update(gctx *gin.Context) {
	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	arg := accountservice.UpdateParams{
		ID:   gctx.Param("accountId"),
		Name: req.Name,
	}

	web.Respond(gctx, h.service.Update(gctx.Request.Context(), arg), http.StatusOK)
}

// Delete handles http request to delete an account.
func (h *Handler) Delete(gctx *gin.Context) {
	arg := accountservice.GetParams{ID: gctx.Param("accountId")}

	web.Respond(gctx, h.service.Delete(gctx.Request.Context(), arg), http.StatusOK)
}
