// Package services содержит бизнес-логику для управления проектами путешествий.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/travel-planner/internal/artcatalog"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// Формат дат, принимаемых от клиента.
const dateLayout = "02-01-2006"

// ProjectRepository определяет методы для работы с проектами в хранилище.
// Все методы принимают UID владельца: чужие проекты для вызывающего не существуют.
type ProjectRepository interface {
	// CreateProject сохраняет проект вместе с начальными местами в одной транзакции.
	CreateProject(ctx context.Context, project models.Project, places []models.Place) (int, error)
	// ListProjects возвращает проекты пользователя с пагинацией, новые первыми.
	ListProjects(ctx context.Context, userUID string, limit, offset int) ([]*models.Project, error)
	// GetProject возвращает проект пользователя вместе с местами.
	GetProject(ctx context.Context, userUID string, id int) (*models.Project, error)
	// UpdateProject частично обновляет метаданные проекта.
	UpdateProject(ctx context.Context, userUID string, id int, patch models.ProjectPatch) (int, error)
	// DeleteProject удаляет проект, если в нем нет посещенных мест.
	DeleteProject(ctx context.Context, userUID string, id int) error
}

// CatalogClient описывает проверку идентификатора во внешнем каталоге.
type CatalogClient interface {
	Lookup(ctx context.Context, externalID string) (*artcatalog.Artwork, error)
}

// ProjectService реализует бизнес-логику работы с проектами путешествий.
type ProjectService struct {
	repo    ProjectRepository
	catalog CatalogClient
	log     *slog.Logger
}

// NewProjectService создает новый экземпляр ProjectService.
func NewProjectService(repo ProjectRepository, catalog CatalogClient, log *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:    repo,
		catalog: catalog,
		log:     log,
	}
}

// Create создает новый проект пользователя, при необходимости вместе
// с начальным списком мест (не более 10, без дубликатов external_id).
// Каждое место проверяется во внешнем каталоге до записи; если хоть одно
// не проходит проверку, проект не сохраняется.
func (s *ProjectService) Create(ctx context.Context, userUID string, req models.DummyProject) (int, error) {
	if len(req.Places) > models.MaxPlacesPerProject {
		return 0, errs.ErrPlaceLimitReached
	}

	seen := make(map[string]struct{}, len(req.Places))
	for _, p := range req.Places {
		if _, ok := seen[p.ExternalID]; ok {
			return 0, errs.ErrPlaceAlreadyExists
		}
		seen[p.ExternalID] = struct{}{}
	}

	project := models.Project{
		UserUID: userUID,
		Name:    req.Name,
	}
	if req.Description != "" {
		project.Description = &req.Description
	}
	if req.StartDate != "" {
		startDate, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", errs.ErrInvalidStartDate, req.StartDate)
		}
		project.StartDate = &startDate
	}

	places := make([]models.Place, 0, len(req.Places))
	for _, p := range req.Places {
		artwork, err := s.catalog.Lookup(ctx, p.ExternalID)
		if err != nil {
			return 0, err
		}
		place := models.Place{
			ExternalID: artwork.ExternalID,
			Title:      artwork.Title,
			ImageURL:   artwork.ImageURL,
		}
		if p.Notes != "" {
			notes := p.Notes
			place.Notes = &notes
		}
		places = append(places, place)
	}

	id, err := s.repo.CreateProject(ctx, project, places)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new travel project",
		slog.Int("id", id), slog.Int("places", len(places)))
	return id, nil
}

// List возвращает проекты пользователя с пагинацией.
func (s *ProjectService) List(ctx context.Context, userUID string, limit, offset int) ([]*models.Project, error) {
	return s.repo.ListProjects(ctx, userUID, limit, offset)
}

// Get возвращает проект пользователя по ID вместе с местами.
func (s *ProjectService) Get(ctx context.Context, userUID string, id int) (*models.Project, error) {
	return s.repo.GetProject(ctx, userUID, id)
}

// Update частично обновляет метаданные проекта. Поля, отсутствующие
// в запросе, остаются без изменений.
func (s *ProjectService) Update(ctx context.Context, userUID string, id int, req models.UpdateProject) (int, error) {
	patch := models.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", errs.ErrInvalidStartDate, *req.StartDate)
		}
		patch.StartDate = &startDate
	}

	res, err := s.repo.UpdateProject(ctx, userUID, id, patch)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated travel project", slog.Int("id", id))
	return res, nil
}

// Delete удаляет проект вместе с местами. Проект с посещенными местами
// удалить нельзя: сначала нужно снять отметки is_visited.
func (s *ProjectService) Delete(ctx context.Context, userUID string, id int) error {
	if err := s.repo.DeleteProject(ctx, userUID, id); err != nil {
		return err
	}
	s.log.Info("deleted travel project", slog.Int("id", id))
	return nil
}
