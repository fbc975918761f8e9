package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind apperrors.Kind
		want int
	}{
		{kind: apperrors.KindValidation, want: http.StatusBadRequest},
		{kind: apperrors.KindNotFound, want: http.StatusNotFound},
		{kind: apperrors.KindAlreadyExists, want: http.StatusConflict},
		{kind: apperrors.KindAuthFailed, want: http.StatusUnauthorized},
		{kind: apperrors.KindInvalidToken, want: http.StatusUnauthorized},
		{kind: apperrors.KindUnknown, want: http.StatusInternalServerError},
		{kind: apperrors.Kind(0), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if got := StatusFor(tc.kind); got != tc.want {
			t.Errorf("StatusFor(%v) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	gctx, _ := gin.CreateTestContext(recorder)
	gctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	return gctx, recorder
}

func TestRespondSuccess(t *testing.T) {
	t.Parallel()

	gctx, recorder := newTestContext(t)

	result := either.Right[*apperrors.Error](map[string]string{"name": "groceries"})
	Respond(gctx, result, http.StatusCreated)

	if recorder.Code != http.StatusCreated {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusCreated)
	}

	var body map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal(%v) returned error: %v", recorder.Body.String(), err)
	}

	if body["name"] != "groceries" {
		t.Errorf("body = %v, want name=groceries", body)
	}
}

func TestRespondErrorEnvelope(t *testing.T) {
	t.Parallel()

	gctx, recorder := newTestContext(t)

	RespondError(gctx, apperrors.NotFound("account", "id", "abc"))

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusNotFound)
	}

	var body struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
		Slug  string `json:"slug"`
	}

	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal(%v) returned error: %v", recorder.Body.String(), err)
	}

	if body.Code != http.StatusNotFound || body.Slug != "NotFoundError" {
		t.Errorf("body = %+v, want code 404 and slug NotFoundError", body)
	}

	if body.Error != "account with id abc not found" {
		t.Errorf("body.Error = %v, want rendered message", body.Error)
	}
}

func TestRespondValidationEnvelope(t *testing.T) {
	t.Parallel()

	gctx, recorder := newTestContext(t)

	appErr := apperrors.Validation(map[string][]string{"email": {"must be a valid email"}})
	Respond(gctx, either.Wrong[*apperrors.Error, string](appErr), http.StatusOK)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusBadRequest)
	}

	var body struct {
		Code  int `json:"code"`
		Error struct {
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		} `json:"error"`
		Slug string `json:"slug"`
	}

	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("json.Unmarshal(%v) returned error: %v", recorder.Body.String(), err)
	}

	if body.Slug != "InputValidationError" {
		t.Errorf("body.Slug = %v, want InputValidationError", body.Slug)
	}

	want := map[string][]string{"email": {"must be a valid email"}}
	if diff := cmp.Diff(want, body.Error.Errors); diff != "" {
		t.Errorf("body.Error.Errors returned unexpected diff: %v", diff)
	}
}

func TestRespondUnknownIs500(t *testing.T) {
	t.Parallel()

	gctx, recorder := newTestContext(t)

	RespondError(gctx, apperrors.Unknown(errors.New("db gone")))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("status = %v, want %v", recorder.Code, http.StatusInternalServerError)
	}
}

func TestNewPaginated(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		data           []int
		page, limit    int
		total          int
		wantTotalPages int
	}{
		{name: "ExactPages", data: []int{1, 2}, page: 1, limit: 2, total: 4, wantTotalPages: 2},
		{name: "PartialLastPage", data: []int{1}, page: 3, limit: 10, total: 21, wantTotalPages: 3},
		{name: "Empty", data: nil, page: 1, limit: 10, total: 0, wantTotalPages: 0},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := NewPaginated(tc.data, tc.page, tc.limit, tc.total)

			if got.Pagination.TotalPages != tc.wantTotalPages {
				t.Errorf("TotalPages = %v, want %v", got.Pagination.TotalPages, tc.wantTotalPages)
			}

			if got.Data == nil {
				t.Error("Data = nil, want empty slice")
			}

			if got.Pagination.Total != tc.total {
				t.Errorf("Total = %v, want %v", got.Pagination.Total, tc.total)
			}
		})
	}
}
