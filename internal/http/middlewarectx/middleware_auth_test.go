package middlewarectx

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
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// MockAuthService реализует интерфейс middlewarectx.Service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*MockAuthService)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:       "валидный токен пропускается дальше",
			authHeader: "Bearer good-token",
			setupMock: func(m *MockAuthService) {
				m.On("ValidateToken", mock.Anything, "good-token").
					Return(&models.User{Username: "traveler", UID: "uid-123"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "отсутствует заголовок Authorization",
			authHeader:     "",
			setupMock:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     "Token abc",
			setupMock:      func(_ *MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "недействительный токен",
			authHeader: "Bearer bad-token",
			setupMock: func(m *MockAuthService) {
				m.On("ValidateToken", mock.Anything, "bad-token").
					Return(nil, errs.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			tt.setupMock(mockService)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// контекст должен содержать имя пользователя и UID
				assert.Equal(t, "traveler", r.Context().Value(User))
				assert.Equal(t, "uid-123", r.Context().Value(UserUID))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/projects", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			w := httptest.NewRecorder()
			JWTMiddleware(mockService, logger)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if !tt.expectNext {
				assert.True(t, strings.Contains(w.Body.String(), "Error"))
			}

			mockService.AssertExpectations(t)
		})
	}
}
