package create

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

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userUID string, req models.DummyProject) (int, error) {
	args := m.Called(ctx, userUID, req)
	return args.Int(0), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	const userUID = "2b3f7e1a-1111-4f0c-9a5d-111111111111"

	tests := []struct {
		name           string
		body           string
		withUser       bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "успешное создание проекта",
			body:     `{"name":"Чикаго весной","start_date":"15-06-2026"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.Anything).Return(42, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":42`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"name":`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "отсутствует обязательное имя",
			body:           `{"description":"без имени"}`,
			withUser:       true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Name is a required field`,
		},
		{
			name:           "нет пользователя в контексте",
			body:           `{"name":"Чикаго"}`,
			withUser:       false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:     "слишком много мест",
			body:     `{"name":"Чикаго"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.Anything).
					Return(0, errs.ErrPlaceLimitReached)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `project cannot have more than 10 places`,
		},
		{
			name:     "дубликат external_id",
			body:     `{"name":"Чикаго"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.Anything).
					Return(0, errs.ErrPlaceAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `duplicate external id in places`,
		},
		{
			name:     "external_id не найден в каталоге",
			body:     `{"name":"Чикаго"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.Anything).
					Return(0, errs.ErrInvalidExternalID)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `external id not found in catalog`,
		},
		{
			name:     "каталог недоступен",
			body:     `{"name":"Чикаго"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.Anything).
					Return(0, errs.ErrCatalogUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `art catalog is unavailable`,
		},
		{
			name:     "некорректная дата начала",
			body:     `{"name":"Чикаго","start_date":"2026-06-15"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.Anything).
					Return(0, errs.ErrInvalidStartDate)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid start date`,
		},
		{
			name:     "прочая ошибка сервиса",
			body:     `{"name":"Чикаго"}`,
			withUser: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, userUID, mock.Anything).
					Return(0, errors.New("storage failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not create project`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(tt.body))
			if tt.withUser {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, userUID)
				req = req.WithContext(ctx)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
