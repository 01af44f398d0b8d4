package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, userUID string, id int) (*models.Project, error) {
	args := m.Called(ctx, userUID, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	const userUID = "2b3f7e1a-1111-4f0c-9a5d-111111111111"

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное чтение проекта",
			id:   "123",
			setupMock: func(m *MockService) {
				project := &models.Project{
					ID:   123,
					Name: "Чикаго весной",
					Places: []*models.Place{
						{ID: 1, ExternalID: "27992", Title: "A Sunday on La Grande Jatte"},
					},
				}
				m.On("Get", mock.Anything, userUID, 123).Return(project, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Чикаго весной"`,
		},
		{
			name:           "некорректный id в URL",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid id"`,
		},
		{
			name: "проект не найден",
			id:   "999",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, userUID, 999).Return(nil, errs.ErrProjectNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"project not found"`,
		},
		{
			name: "ошибка сервиса",
			id:   "777",
			setupMock: func(m *MockService) {
				m.On("Get", mock.Anything, userUID, 777).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not read project`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/projects/"+tt.id, nil)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, userUID)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
