// Package web translates use case results into HTTP responses.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
)

// ErrorResponse is the envelope for every failed request.
//
// For validation failures Error holds a ValidationBody; for everything else
// it holds the failure message string.
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error any    `json:"error"`
	Slug  string `json:"slug"`
}

// ValidationBody carries per-field validation issues.
type ValidationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// The dispatch table from failure kind to HTTP status. First match wins;
// kinds outside the table fall through to 500.
var statusByKind = map[apperrors.Kind]int{
	apperrors.KindValidation:    http.StatusBadRequest,
	apperrors.KindNotFound:      http.StatusNotFound,
	apperrors.KindAlreadyExists: http.StatusConflict,
	apperrors.KindAuthFailed:    http.StatusUnauthorized,
	apperrors.KindInvalidToken:  http.StatusUnauthorized,
}

// StatusFor returns the HTTP status for a failure kind.
func StatusFor(kind apperrors.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// Respond writes the result as exactly one HTTP response: the success value
// with successStatus on Right, the mapped error envelope on Wrong.
func Respond[T any](gctx *gin.Context, result either.Either[*apperrors.Error, T], successStatus int) {
	if result.IsRight() {
		gctx.JSON(successStatus, result.Right())
		return
	}

	RespondError(gctx, result.Wrong())
}

// RespondError writes the error envelope for the given failure.
func RespondError(gctx *gin.Context, appErr *apperrors.Error) {
	l := zerolog.Ctx(gctx.Request.Context())

	status := StatusFor(appErr.Kind())

	if status >= http.StatusInternalServerError {
		l.Error().Str("slug", appErr.Slug()).Msg(appErr.Error())
	} else {
		l.Info().Str("slug", appErr.Slug()).Msg(appErr.Error())
	}

	var body any = appErr.Error()
	if appErr.Kind() == apperrors.KindValidation {
		body = ValidationBody{Message: appErr.Error(), Errors: appErr.Fields()}
	}

	gctx.JSON(status, ErrorResponse{Code: status, Error: body, Slug: appErr.Slug()})
}

// BindError reports a request body or query that could not be bound at all.
func BindError(gctx *gin.Context, err error) {
	RespondError(gctx, apperrors.FieldValidation(apperrors.FormField, err.Error()))
}
