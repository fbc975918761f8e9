// Package transactiondelivery manages delivery layer of transactions.
//
// Every route is nested under its account, so handlers always carry the
// accountId path parameter into the service input.
package transactiondelivery

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/internal/transactionservice"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, arg transactionservice.CreateParams) either.Either[*apperrors.Error, domain.TransactionResponse]
	Get(ctx context.Context, arg transactionservice.GetParams) either.Either[*apperrors.Error, domain.TransactionResponse]
	List(ctx context.Context, arg transactionservice.ListParams) either.Either[*apperrors.Error, web.Paginated[domain.TransactionResponse]]
	Update(ctx context.Context, arg transactionservice.UpdateParams) either.Either[*apperrors.Error, domain.TransactionResponse]
	Delete(ctx context.Context, arg transactionservice.GetParams) either.Either[*apperrors.Error, domain.TransactionResponse]
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type createRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
}

// Create handles http request to record a transaction on an account.
func (h *Handler) Create(gctx *gin.Context) {
	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	arg := transactionservice.CreateParams{
		Amount:      req.Amount,
		Description: req.Description,
		AccountID:   gctx.Param("accountId"),
	}

	web.Respond(gctx, h.service.Create(gctx.Request.Context(), arg), http.StatusCreated)
}

// Get handles http request to get a transaction by id.
func (h *Handler) Get(gctx *gin.Context) {
	arg := transactionservice.GetParams{
		ID:        gctx.Param("id"),
		AccountID: gctx.Param("accountId"),
	}

	web.Respond(gctx, h.service.Get(gctx.Request.Context(), arg), http.StatusOK)
}

type listRequest struct {
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
	Description string `form:"description"`
	CreatedAt   string `form:"createdAt"`
	UpdatedAt   string `form:"updatedAt"`
}

// List handles http request to list an account's transactions.
func (h *Handler) List(gctx *gin.Context) {
	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	arg := transactionservice.ListParams{
		AccountID:   gctx.Param("accountId"),
		Page:        req.Page,
		Limit:       req.Limit,
		Description: req.Description,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}

	web.Respond(gctx, h.service.List(gctx.Request.Context(), arg), http.StatusOK)
}

type updateRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	// Raw so that an absent description and an explicit null stay distinguishable.
	Description json.RawMessage `json:"description"`
}

// Update handles http request to update a transaction.
func (h *Handler) Update(gctx *gin.Context) {
	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		web.BindError(gctx, err)
		return
	}

	arg := transactionservice.UpdateParams{
		ID:        gctx.Param("id"),
		AccountID: gctx.Param("accountId"),
		Amount:    req.Amount,
	}

	if len(req.Description) > 0 {
		if string(req.Description) == "null" {
			arg.ClearDescription = true
		} else {
			var description string
			if err := json.Unmarshal(req.Description, &description); err != nil {
				web.BindError(gctx, err)
				return
			}

			arg.Description = &description
		}
	}

	web.Respond(gctx, h.service.Update(gctx.Request.Context(), arg), http.StatusOK)
}

// Delete handles http request to delete a transaction.
func (h *Handler) Delete(gctx *gin.Context) {
	arg := transactionservice.GetParams{
		ID:        gctx.Param("id"),
		AccountID: gctx.Param("accountId"),
	}

	web.Respond(gctx, h.service.Delete(gctx.Request.Context(), arg), http.StatusOK)
}
