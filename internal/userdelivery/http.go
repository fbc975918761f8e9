// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/internal/userservice"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Create(ctx context.Context, arg userservice.CreateParams) either.Either[*apperrors.Error, domain.User]
	Get(ctx context.Context, arg userservice.GetParams) either.Either[*apperrors.Error, domain.User]
	List(ctx context.Context, arg userservice.ListParams) either.Either[*apperrors.Error, web.Paginated[domain.User]]
	Update(ctx context.Context, arg userservice.UpdateParams) either.Either[*apperrors.Error, domain.User]
	Delete(ctx context.Context, arg userservice.GetParams) either.Either[*apperrors.Error, domain.User]
	ChangePassword(ctx context.Context, arg userservice.ChangePasswordParams) either.Either[*apperrors.Error, userservice.Message]
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) Handler {
	return Handler{service: us}
}

// Create handles http request to create a user.
func (h *Handler) Create(gctx *gin.Context) {
	var req userservice.CreateParams
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	web.Respond(gctx, h.service.Create(gctx.Request.Context(), req), http.StatusCreated)
}

// Get handles http request to get a user by id.
func (h *Handler) Get(gctx *gin.Context) {
	arg := userservice.GetParams{ID: gctx.Param("id")}

	web.Respond(gctx, h.service.Get(gctx.Request.Context(), arg), http.StatusOK)
}

type listRequest struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Name      string `form:"name"`
	Email     string `form:"email"`
	CreatedAt string `form:"createdAt"`
	UpdatedAt string `form:"updatedAt"`
}

// List handles http request to list users.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	arg := userservice.ListParams{
		Page:      req.Page,
		Limit:     req.Limit,
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}

	web.Respond(gctx, h.service.List(gctx.Request.Context(), arg), http.StatusOK)
}

type updateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Update handles http request to update a user.
func (h *Handler) Update(gctx *gin.Context) {
	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	arg := userservice.UpdateParams{
		ID:    gctx.Param("id"),
		Name:  req.Name,
		Email: req.Email,
	}

	web.Respond(gctx, h.service.Update(gctx.Request.Context(), arg), http.StatusOK)
}

// Delete handles http request to delete a user.
func (h *Handler) Delete(gctx *gin.Context) {
	arg := userservice.GetParams{ID: gctx.Param("id")}

	web.Respond(gctx, h.service.Delete(gctx.Request.Context(), arg), http.StatusOK)
}

// ChangePassword handles http request to change a user password.
func (h *Handler) ChangePassword(gctx *gin.Context) {
	var req userservice.ChangePasswordParams
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	web.Respond(gctx, h.service.ChangePassword(gctx.Request.Context(), req), http.StatusOK)
}
