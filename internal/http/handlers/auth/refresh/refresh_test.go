package refresh

import (
	"context"
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

// MockService реализует интерфейс refresh.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func TestRefreshHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление токена",
			body: `{"refresh_token":"valid-refresh"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "valid-refresh").Return("new-access", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"new-access"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"refresh_token":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "недействительный токен",
			body: `{"refresh_token":"garbage"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "garbage").Return("", errs.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `invalid or expired refresh token`,
		},
		{
			name: "сессия отозвана",
			body: `{"refresh_token":"revoked"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "revoked").Return("", errs.ErrSessionNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `invalid or expired refresh token`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/refresh", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
