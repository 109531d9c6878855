package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Lexv0lk/shop/internal/shop/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testUserEntity(id int64, username string) domain.User {
	return domain.User{
		Entity:   domain.Entity{ID: id, CreatedAt: testCreatedAt, ModifiedAt: testCreatedAt},
		Fullname: "Alisher Navoiy",
		Username: username,
		Balance:  decimal.RequireFromString("12.50"),
	}
}

func TestUserHandler_Create(t *testing.T) {
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
			name: "user created",
			request: testRequest{
				method: http.MethodPost,
				path:   "/api/users",
				body:   `{"fullname":"Alisher Navoiy","username":"alisher"}`,
			},
			expectedStatus: http.StatusOK,

			prepareFn: func(services testServices) {
				services.users.EXPECT().
					CreateUser(gomock.Any(), domain.CreateUserParams{Fullname: "Alisher Navoiy", Username: "alisher"}).
					Return(testUserEntity(1, "alisher"), nil)
			},
			checkResponseFn: func(t *testing.T, body []byte) {
				var response userResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int64(1), response.ID)
				assert.Equal(t, "alisher", response.Username)
				assert.True(t, decimal.RequireFromString("12.5").Equal(response.Balance))
			},
		},
		{
			name: "missing username",
			request: testRequest{
				method: http.MethodPost,
				path:   "/api/users",
				body:   `{"fullname":"Alisher Navoiy"}`,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {},
			checkResponseFn: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{"errors":"invalid request body"}`, string(body))
			},
		},
		{
			name: "username taken in russian",
			request: testRequest{
				method:   http.MethodPost,
				path:     "/api/users",
				body:     `{"fullname":"Alisher Navoiy","username":"alisher"}`,
				language: "ru",
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {
				services.users.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(domain.User{}, domain.NewUserAlreadyExistsError("alisher"))
			},
			checkResponseFn: func(t *testing.T, body []byte) {
				var response errorResponse
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int(domain.CodeUserAlreadyExists), response.Code)
				assert.Equal(t, "Имя пользователя alisher уже занято", response.Message)
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

func TestUserHandler_Get(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		path           string
		expectedStatus int

		prepareFn func(services testServices)
	}

	tests := []testCase{
		{
			name:           "found",
			path:           "/api/users/5",
			expectedStatus: http.StatusOK,

			prepareFn: func(services testServices) {
				services.users.EXPECT().GetUser(gomock.Any(), int64(5)).Return(testUserEntity(5, "bobur"), nil)
			},
		},
		{
			name:           "not found",
			path:           "/api/users/5",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {
				services.users.EXPECT().GetUser(gomock.Any(), int64(5)).Return(domain.User{}, domain.NewUserNotFoundError(5))
			},
		},
		{
			name:           "non numeric id",
			path:           "/api/users/abc",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {},
		},
		{
			name:           "zero id",
			path:           "/api/users/0",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(services testServices) {},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			services := newTestServices(ctrl)
			tt.prepareFn(services)

			recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: tt.path})

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}

func TestUserHandler_NotFoundMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	services := newTestServices(ctrl)
	services.users.EXPECT().GetUser(gomock.Any(), int64(12345)).Return(domain.User{}, domain.NewUserNotFoundError(12345))

	recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/users/12345", language: "en"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assertErrorBody(t, recorder, int(domain.CodeUserNotFound), "User 12345 not found")
}

func TestUserHandler_InvalidID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	services := newTestServices(ctrl)

	recorder := serve(newTestRouter(services), testRequest{method: http.MethodDelete, path: "/api/users/-3"})

	assertTransportError(t, recorder, "invalid id")
}

func TestUserHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("users listed", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		services := newTestServices(ctrl)
		services.users.EXPECT().ListUsers(gomock.Any()).
			Return([]domain.User{testUserEntity(1, "alisher"), testUserEntity(2, "bobur")}, nil)

		recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/users"})

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []userResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, "bobur", response[1].Username)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		services := newTestServices(ctrl)
		services.users.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

		recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/users"})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
	})

	t.Run("storage failure is hidden", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		services := newTestServices(ctrl)
		services.users.EXPECT().ListUsers(gomock.Any()).Return(nil, assert.AnError)
		services.logger.EXPECT().Error("request failed", gomock.Any()).Times(1)

		recorder := serve(newTestRouter(services), testRequest{method: http.MethodGet, path: "/api/users", language: "en"})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assertErrorBody(t, recorder, int(domain.CodeInternal), "Unexpected error, please contact support")
		assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	services := newTestServices(ctrl)
	services.users.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(nil)

	recorder := serve(newTestRouter(services), testRequest{method: http.MethodDelete, path: "/api/users/7"})

	assert.Equal(t, http.StatusOK, recorder.Code)
}
