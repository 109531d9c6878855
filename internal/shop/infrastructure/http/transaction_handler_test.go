package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPurchase() domain.Purchase {
	return domain.Purchase{
		Transaction: domain.Transaction{
			Entity:      domain.Entity{ID: 21},
			UserID:      1,
			TotalAmount: decimal.RequireFromString("7500.00"),
			Date:        testCreatedAt,
		},
		Items: []domain.TransactionItem{
			{
				Entity:        domain.Entity{ID: 31},
				TransactionID: 21,
				ProductID:     4,
				Count:         3,
				UnitPrice:     decimal.RequireFromString("2500.00"),
				TotalAmount:   decimal.RequireFromString("7500.00"),
			},
		},
	}
}

func TestTransactionHandler_Buy(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		request        testRequest
		expectedStatus int

		prepareFn       func(services testServices)
		checkResponseFn func(t *testing.T, body []byte)
	}

	tests := []testCase{
		{
			name:           "purchase committed",
			request:        testRequest{method: http.MethodPost, path: "/api/transactions/buy", body: `{"userId":1,"items":[{"productId":4,"count":3}]}`},
			expectedStatus: http.StatusOK,

			prepareFn: func(services testServices) {
				services.purchases.EXPECT().
					ProcessBuy(gomock.Any(), domain.BuyRequest{UserID: 1, Items: []domain.BuyItem{{ProductID: 4, Count: 3}}}).
					Return(testPurchase(), nil)
			},
			checkResponseFn: func(t *testing.T, body []byte) {
				var response transactionResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int64(21), response.ID)
				assert.True(t, decimal.NewFromInt(7500).Equal(response.TotalAmount))
				require.Len(t, response.Items, 1)
				assert.Equal(t, int64(3), response.Items[0].Count)
			},
		},
		{
			name:           "insufficient stock in english",
			request:        testRequest{method: http.MethodPost, path: "/api/transactions/buy", body: `{"userId":1,"items":[{"productId":4,"count":30}]}`, language: "en"},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {
				services.purchases.EXPECT().
					ProcessBuy(gomock.Any(), gomock.Any()).
					Return(domain.Purchase{}, domain.NewInsufficientStockError(4, 30))
			},
			checkResponseFn: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"code":112,"message":"Not enough stock of product 4: 30 requested"}`, string(body))
			},
		},
		{
			name:           "insufficient balance in russian",
			request:        testRequest{method: http.MethodPost, path: "/api/transactions/buy", body: `{"userId":1,"items":[{"productId":4,"count":1}]}`, language: "ru"},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {
				services.purchases.EXPECT().
					ProcessBuy(gomock.Any(), gomock.Any()).
					Return(domain.Purchase{}, domain.NewInsufficientBalanceError(1))
			},
			checkResponseFn: func(t *testing.T, body []byte) {
				var response errorResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int(domain.CodeInsufficientBalance), response.Code)
				assert.Equal(t, "Недостаточно средств на балансе пользователя 1", response.Message)
			},
		},
		{
			name:           "item without product is answered by the shop",
			request:        testRequest{method: http.MethodPost, path: "/api/transactions/buy", body: `{"userId":1,"items":[{"count":1}]}`, language: "en"},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {
				services.purchases.EXPECT().
					ProcessBuy(gomock.Any(), domain.BuyRequest{UserID: 1, Items: []domain.BuyItem{{ProductID: 0, Count: 1}}}).
					Return(domain.Purchase{}, domain.NewProductNotFoundError(0))
			},
			checkResponseFn: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"code":109,"message":"Product 0 not found"}`, string(body))
			},
		},
		{
			name:           "missing user id",
			request:        testRequest{method: http.MethodPost, path: "/api/transactions/buy", body: `{"items":[{"productId":4,"count":1}]}`},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {},
			checkResponseFn: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"errors":"invalid request body"}`, string(body))
			},
		},
		{
			name:           "empty items reach the service",
			request:        testRequest{method: http.MethodPost, path: "/api/transactions/buy", body: `{"userId":1,"items":[]}`},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {
				services.purchases.EXPECT().
					ProcessBuy(gomock.Any(), domain.BuyRequest{UserID: 1, Items: []domain.BuyItem{}}).
					Return(domain.Purchase{}, domain.NewInvalidAmountError("purchase must contain at least one item"))
			},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			services := newTestServices(ctrl)
			tt.prepareFn(services)

			recorder := serve(newTestRouter(services), tt.request)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, recorder.Body.Bytes())
			}
		})
	}
}

func TestTransactionHandler_History(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	services := newTestServices(ctrl)
	services.purchases.EXPECT().GetBuyHistory(gomock.Any(), int64(1)).Return([]domain.Purchase{testPurchase()}, nil)

	recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/transactions/user/1/history"})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []transactionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 1)
	require.Len(t, response[0].Items, 1)
	assert.Equal(t, int64(4), response[0].Items[0].ProductID)
}

func TestTransactionHandler_Items(t *testing.T) {
	t.Parallel()

	t.Run("items listed", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		services := newTestServices(ctrl)
		services.purchases.EXPECT().GetTransactionItems(gomock.Any(), int64(21)).Return(testPurchase().Items, nil)

		recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/transactions/21/items"})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []transactionItemResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, int64(21), response[0].TransactionID)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		services := newTestServices(ctrl)
		services.purchases.EXPECT().GetTransactionItems(gomock.Any(), int64(99)).
			Return(nil, domain.NewTransactionNotFoundError(99))

		recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/transactions/99/items", language: "en"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assertErrorBody(t, recorder, int(domain.CodeTransactionNotFound), "Transaction 99 not found")
	})
}

func TestTransactionHandler_ListAll(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	services := newTestServices(ctrl)
	services.purchases.EXPECT().ListAllTransactions(gomock.Any()).Return([]domain.Transaction{testPurchase().Transaction}, nil)

	recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/transactions/admin/getall"})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []transactionResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Empty(t, response[0].Items)
}
