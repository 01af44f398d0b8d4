package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/travel-planner/internal/artcatalog"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateProject(ctx context.Context, project models.Project, places []models.Place) (int, error) {
	args := m.Called(ctx, project, places)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListProjects(ctx context.Context, userUID string, limit, offset int) ([]*models.Project, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}
func (m *RepoMock) GetProject(ctx context.Context, userUID string, id int) (*models.Project, error) {
	args := m.Called(ctx, userUID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}
func (m *RepoMock) UpdateProject(ctx context.Context, userUID string, id int, patch models.ProjectPatch) (int, error) {
	args := m.Called(ctx, userUID, id, patch)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) DeleteProject(ctx context.Context, userUID string, id int) error {
	return m.Called(ctx, userUID, id).Error(0)
}

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) Lookup(ctx context.Context, externalID string) (*artcatalog.Artwork, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artcatalog.Artwork), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestProjectService_Create(t *testing.T) {
	const userUID = "2b3f7e1a-1111-4f0c-9a5d-111111111111"

	tests := []struct {
		name       string
		req        models.DummyProject
		setupMocks func(r *RepoMock, c *CatalogMock)
		wantID     int
		wantErr    error
	}{
		{
			name: "успешное создание проекта без мест",
			req:  models.DummyProject{Name: "Чикаго весной"},
			setupMocks: func(r *RepoMock, _ *CatalogMock) {
				r.On("CreateProject", mock.Anything, mock.MatchedBy(func(p models.Project) bool {
					return p.Name == "Чикаго весной" && p.UserUID == userUID
				}), mock.Anything).Return(42, nil).Once()
			},
			wantID: 42,
		},
		{
			name: "успешное создание проекта с местами",
			req: models.DummyProject{
				Name:      "Музеи",
				StartDate: "15-06-2026",
				Places: []models.DummyPlace{
					{ExternalID: "27992", Notes: "главный зал"},
					{ExternalID: "28560"},
				},
			},
			setupMocks: func(r *RepoMock, c *CatalogMock) {
				c.On("Lookup", mock.Anything, "27992").
					Return(&artcatalog.Artwork{ExternalID: "27992", Title: "A Sunday on La Grande Jatte"}, nil).Once()
				c.On("Lookup", mock.Anything, "28560").
					Return(&artcatalog.Artwork{ExternalID: "28560", Title: "The Bedroom"}, nil).Once()
				r.On("CreateProject", mock.Anything, mock.Anything, mock.MatchedBy(func(places []models.Place) bool {
					return len(places) == 2 && places[0].Title == "A Sunday on La Grande Jatte"
				})).Return(7, nil).Once()
			},
			wantID: 7,
		},
		{
			name: "более 10 мест в запросе",
			req: models.DummyProject{
				Name: "Слишком много",
				Places: func() []models.DummyPlace {
					places := make([]models.DummyPlace, 11)
					for i := range places {
						places[i] = models.DummyPlace{ExternalID: string(rune('a' + i))}
					}
					return places
				}(),
			},
			setupMocks: func(_ *RepoMock, _ *CatalogMock) {},
			wantErr:    errs.ErrPlaceLimitReached,
		},
		{
			name: "дубликат external_id в запросе",
			req: models.DummyProject{
				Name: "Дубликаты",
				Places: []models.DummyPlace{
					{ExternalID: "27992"},
					{ExternalID: "27992"},
				},
			},
			setupMocks: func(_ *RepoMock, _ *CatalogMock) {},
			wantErr:    errs.ErrPlaceAlreadyExists,
		},
		{
			name: "external_id не найден в каталоге",
			req: models.DummyProject{
				Name:   "Несуществующее",
				Places: []models.DummyPlace{{ExternalID: "0"}},
			},
			setupMocks: func(_ *RepoMock, c *CatalogMock) {
				c.On("Lookup", mock.Anything, "0").Return(nil, errs.ErrInvalidExternalID).Once()
			},
			wantErr: errs.ErrInvalidExternalID,
		},
		{
			name: "каталог недоступен",
			req: models.DummyProject{
				Name:   "Сбой каталога",
				Places: []models.DummyPlace{{ExternalID: "27992"}},
			},
			setupMocks: func(_ *RepoMock, c *CatalogMock) {
				c.On("Lookup", mock.Anything, "27992").Return(nil, errs.ErrCatalogUnavailable).Once()
			},
			wantErr: errs.ErrCatalogUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			catalog := new(CatalogMock)
			tt.setupMocks(repo, catalog)

			svc := NewProjectService(repo, catalog, newNoopLogger())
			id, err := svc.Create(context.Background(), userUID, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			repo.AssertExpectations(t)
			catalog.AssertExpectations(t)
		})
	}

	t.Run("некорректная дата начала", func(t *testing.T) {
		svc := NewProjectService(new(RepoMock), new(CatalogMock), newNoopLogger())
		_, err := svc.Create(context.Background(), userUID, models.DummyProject{
			Name:      "Плохая дата",
			StartDate: "2026-06-15",
		})
		assert.ErrorIs(t, err, errs.ErrInvalidStartDate)
	})
}

func TestProjectService_Update(t *testing.T) {
	const userUID = "2b3f7e1a-1111-4f0c-9a5d-111111111111"
	name := "Новое имя"
	badDate := "июнь"
	goodDate := "01-07-2026"

	t.Run("успешное обновление имени и даты", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("UpdateProject", mock.Anything, userUID, 5, mock.MatchedBy(func(p models.ProjectPatch) bool {
			wantDate := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
			return p.Name != nil && *p.Name == name &&
				p.StartDate != nil && p.StartDate.Equal(wantDate)
		})).Return(1, nil).Once()

		svc := NewProjectService(repo, new(CatalogMock), newNoopLogger())
		res, err := svc.Update(context.Background(), userUID, 5, models.UpdateProject{
			Name:      &name,
			StartDate: &goodDate,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, res)
		repo.AssertExpectations(t)
	})

	t.Run("некорректная дата", func(t *testing.T) {
		svc := NewProjectService(new(RepoMock), new(CatalogMock), newNoopLogger())
		_, err := svc.Update(context.Background(), userUID, 5, models.UpdateProject{StartDate: &badDate})
		assert.ErrorIs(t, err, errs.ErrInvalidStartDate)
	})

	t.Run("проект не найден", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("UpdateProject", mock.Anything, userUID, 404, mock.Anything).
			Return(0, errs.ErrProjectNotFound).Once()

		svc := NewProjectService(repo, new(CatalogMock), newNoopLogger())
		_, err := svc.Update(context.Background(), userUID, 404, models.UpdateProject{Name: &name})
		assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	})
}

func TestProjectService_Delete(t *testing.T) {
	const userUID = "2b3f7e1a-1111-4f0c-9a5d-111111111111"

	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "успешное удаление"},
		{name: "проект не найден", repoErr: errs.ErrProjectNotFound},
		{name: "есть посещенные места", repoErr: errs.ErrProjectHasVisitedPlaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("DeleteProject", mock.Anything, userUID, 9).Return(tt.repoErr).Once()

			svc := NewProjectService(repo, new(CatalogMock), newNoopLogger())
			err := svc.Delete(context.Background(), userUID, 9)

			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_List(t *testing.T) {
	const userUID = "2b3f7e1a-1111-4f0c-9a5d-111111111111"

	repo := new(RepoMock)
	wantErr := errors.New("db error")
	repo.On("ListProjects", mock.Anything, userUID, 10, 0).Return(nil, wantErr).Once()

	svc := NewProjectService(repo, new(CatalogMock), newNoopLogger())
	_, err := svc.List(context.Background(), userUID, 10, 0)
	assert.ErrorIs(t, err, wantErr)
	repo.AssertExpectations(t)
}
