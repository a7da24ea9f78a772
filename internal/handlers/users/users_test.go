package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/dto"
	"github.com/GlebRadaev/moneyflow/internal/service/userservice"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	resetAt := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.UserResponseDTO
	}{
		{
			name: "Accounts are listed",
			prepareMock: func() {
				service.EXPECT().GetUsers(gomock.Any()).Return([]domain.User{
					{ID: 1, Username: "user1", AccountNo: 1000000001, Balance: 5000, DailyRemaining: 2000, LimitResetAt: resetAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.UserResponseDTO{
				{ID: 1, Username: "user1", AccountNo: 1000000001, Balance: 5000, DailyRemaining: 2000, LimitResetAt: "2025-10-20"},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GetUsers(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			w := httptest.NewRecorder()
			handler.GetUsers(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.UserResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestSeedUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "Accounts are seeded",
			prepareMock: func() {
				service.EXPECT().SeedUsers(gomock.Any()).Return(10, nil)
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "10 users seeded successfully",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().SeedUsers(gomock.Any()).Return(0, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/users/seed", nil)
			w := httptest.NewRecorder()
			handler.SeedUsers(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMessage != "" {
				assert.Contains(t, w.Body.String(), tt.expectedMessage)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	createdAt := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.TransactionResponseDTO
	}{
		{
			name:   "Ledger history is returned",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: 10, UserID: 1, CounterpartyAccountNo: 1000000002, Amount: -500, Kind: domain.TransactionDebit, CreatedAt: createdAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.TransactionResponseDTO{
				{ID: 10, CounterpartyAccountNo: 1000000002, Amount: -500, Kind: domain.TransactionDebit, CreatedAt: createdAt},
			},
		},
		{
			name:         "Invalid user id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "User not found",
			userID: "99",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 99).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Internal server error",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.userID+"/transactions", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.GetTransactions(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
