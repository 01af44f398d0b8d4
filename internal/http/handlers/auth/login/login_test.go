package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, username, rawPassword string) (string, string, error) {
	args := m.Called(ctx, username, rawPassword)
	return args.String(0), args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			body: `{"username":"traveler","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "traveler", "secret123").
					Return("access-token", "refresh-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"refresh_token":"refresh-token"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"username":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "короткий пароль",
			body:           `{"username":"traveler","password":"123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is too short`,
		},
		{
			name: "неверные учетные данные",
			body: `{"username":"traveler","password":"wrongpass"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "traveler", "wrongpass").
					Return("", "", errs.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `invalid credentials`,
		},
		{
			name: "внутренняя ошибка",
			body: `{"username":"traveler","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "traveler", "secret123").
					Return("", "", errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `failed to login`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
