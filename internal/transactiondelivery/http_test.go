package transactiondelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-finbook/finbook/internal/domain"
	"github.com/go-finbook/finbook/internal/transactionservice"
	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/randompkg"
	"github.com/go-finbook/finbook/pkg/web"

	"github.com/gin-gonic/gin"
)

func newTestRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(service)

	router := gin.New()
	router.POST("/account/:accountId/transaction", handler.Create)
	router.GET("/account/:accountId/transaction", handler.List)
	router.GET("/account/:accountId/transaction/:id", handler.Get)
	router.PUT("/account/:accountId/transaction/:id", handler.Update)
	router.DELETE("/account/:accountId/transaction/:id", handler.Delete)

	return router
}

func ok(r domain.TransactionResponse) either.Either[*apperrors.Error, domain.TransactionResponse] {
	return either.Right[*apperrors.Error](r)
}

func fail(appErr *apperrors.Error) either.Either[*apperrors.Error, domain.TransactionResponse] {
	return either.Wrong[*apperrors.Error, domain.TransactionResponse](appErr)
}

func TestCreateAPI(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	transaction := domain.NewTransaction(50_000_000, nil, accountID)

	testCases := []struct {
		name          string
		body          string
		buildStubs    func(service *MockService)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: `{"amount":5000}`,
			buildStubs: func(service *MockService) {
				arg := transactionservice.CreateParams{
					Amount:    decimal.RequireFromString("5000"),
					AccountID: accountID.String(),
				}

				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(ok(domain.NewTransactionResponse(transaction)))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var got map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.Equal(t, "5000.0000", got["amount"])
				require.Nil(t, got["description"])
			},
		},
		{
			name: "MalformedBody",
			body: `{"amount":}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				var body web.ErrorResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.Equal(t, "InputValidationError", body.Slug)
			},
		},
		{
			name: "UnknownAccount",
			body: `{"amount":10}`,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(fail(apperrors.NotFound("account", "id", accountID)))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(
				http.MethodPost,
				"/account/"+accountID.String()+"/transaction",
				bytes.NewBufferString(tc.body),
			)

			newTestRouter(service).ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGetAPI(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	description := randompkg.String(12)
	transaction := domain.NewTransaction(randompkg.Amount(100), &description, accountID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Get(gomock.Any(), gomock.Eq(transactionservice.GetParams{
			ID:        transaction.ID.String(),
			AccountID: accountID.String(),
		})).
		Times(1).
		Return(ok(domain.NewTransactionResponse(transaction)))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodGet,
		"/account/"+accountID.String()+"/transaction/"+transaction.ID.String(),
		nil,
	)

	newTestRouter(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got domain.TransactionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, transaction.ID, got.ID)
	require.Equal(t, accountID, got.AccountID)
}

func TestListAPI(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	responses := []domain.TransactionResponse{
		domain.NewTransactionResponse(domain.NewTransaction(randompkg.Amount(100), nil, accountID)),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		List(gomock.Any(), gomock.Eq(transactionservice.ListParams{
			AccountID:   accountID.String(),
			Page:        1,
			Limit:       10,
			Description: "groceries",
		})).
		Times(1).
		Return(either.Right[*apperrors.Error](web.NewPaginated(responses, 1, 10, 1)))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodGet,
		"/account/"+accountID.String()+"/transaction?page=1&limit=10&description=groceries",
		nil,
	)

	newTestRouter(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body web.Paginated[domain.TransactionResponse]
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, 1, body.Pagination.TotalPages)
}

func TestUpdateAPI(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	transaction := domain.NewTransaction(125_000, nil, accountID)
	newAmount := decimal.RequireFromString("12.5")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Update(gomock.Any(), gomock.Eq(transactionservice.UpdateParams{
			ID:        transaction.ID.String(),
			AccountID: accountID.String(),
			Amount:    &newAmount,
		})).
		Times(1).
		Return(ok(domain.NewTransactionResponse(transaction)))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodPut,
		"/account/"+accountID.String()+"/transaction/"+transaction.ID.String(),
		bytes.NewBufferString(`{"amount":12.5}`),
	)

	newTestRouter(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got domain.TransactionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "12.5000", got.Amount)
}

func TestUpdateAPINullDescription(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	transaction := domain.NewTransaction(125_000, nil, accountID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Update(gomock.Any(), gomock.Eq(transactionservice.UpdateParams{
			ID:               transaction.ID.String(),
			AccountID:        accountID.String(),
			ClearDescription: true,
		})).
		Times(1).
		Return(ok(domain.NewTransactionResponse(transaction)))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodPut,
		"/account/"+accountID.String()+"/transaction/"+transaction.ID.String(),
		bytes.NewBufferString(`{"description":null}`),
	)

	newTestRouter(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got domain.TransactionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Nil(t, got.Description)
}

func TestDeleteAPI(t *testing.T) {
	t.Parallel()

	accountID := uuid.New()
	transaction := domain.NewTransaction(randompkg.Amount(100), nil, accountID)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Delete(gomock.Any(), gomock.Eq(transactionservice.GetParams{
			ID:        transaction.ID.String(),
			AccountID: accountID.String(),
		})).
		Times(1).
		Return(ok(domain.NewTransactionResponse(transaction)))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(
		http.MethodDelete,
		"/account/"+accountID.String()+"/transaction/"+transaction.ID.String(),
		nil,
	)

	newTestRouter(service).ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}
