package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	loggingmocks "github.com/Lexv0lk/shop/gen/mocks/logging"
	mocks "github.com/Lexv0lk/shop/gen/mocks/shop"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	users     *mocks.MockUserService
	ledger    *mocks.MockLedgerService
	catalog   *mocks.MockCatalogService
	purchases *mocks.MockPurchaseService
	logger    *loggingmocks.MockLogger
}

func newTestServices(ctrl *gomock.Controller) testServices {
	return testServices{
		users:     mocks.NewMockUserService(ctrl),
		ledger:    mocks.NewMockLedgerService(ctrl),
		catalog:   mocks.NewMockCatalogService(ctrl),
		purchases: mocks.NewMockPurchaseService(ctrl),
		logger:    loggingmocks.NewMockLogger(ctrl),
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(services testServices) *gin.Engine {
	router := gin.New()
	RegisterRoutes(router, Handlers{
		Users:        NewUserHandler(services.users, services.logger),
		Payments:     NewPaymentHandler(services.ledger, services.logger),
		Catalog:      NewCatalogHandler(services.catalog, services.logger),
		Transactions: NewTransactionHandler(services.purchases, services.logger),
	}, NewLanguageMiddleware())

	return router
}

type testRequest struct {
	method   string
	path     string
	body     string
	language string
}

func serve(router *gin.Engine, req testRequest) *httptest.ResponseRecorder {
	var body io.Reader
	if req.body != "" {
		body = bytes.NewBufferString(req.body)
	}

	request := httptest.NewRequest(req.method, req.path, body)
	if req.body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if req.language != "" {
		request.Header.Set(languageHeaderName, req.language)
	}

	writer := httptest.NewRecorder()
	router.ServeHTTP(writer, request)

	return writer
}

func assertErrorBody(t *testing.T, recorder *httptest.ResponseRecorder, code int, message string) {
	t.Helper()

	var response errorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, code, response.Code)
	assert.Equal(t, message, response.Message)
}

func assertTransportError(t *testing.T, recorder *httptest.ResponseRecorder, message string) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, message, response["errors"])
}
