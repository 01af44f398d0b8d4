// Package services содержит бизнес-логику для управления местами проектов.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/travel-planner/internal/artcatalog"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// PlaceRepository определяет методы для работы с местами в хранилище.
// Все методы принимают UID владельца: чужие записи для вызывающего не существуют.
type PlaceRepository interface {
	// AddPlace вставляет место, перепроверяя лимит и уникальность в транзакции.
	AddPlace(ctx context.Context, userUID string, projectID int, place models.Place) (*models.Place, error)
	// GetPlace возвращает место по ID.
	GetPlace(ctx context.Context, userUID string, placeID int) (*models.Place, error)
	// UpdatePlace частично обновляет заметки и признак посещения.
	UpdatePlace(ctx context.Context, userUID string, placeID int, patch models.UpdatePlace) (*models.Place, error)
	// ListPlaces возвращает места проекта в порядке добавления.
	ListPlaces(ctx context.Context, userUID string, projectID int) ([]*models.Place, error)
}

// CatalogClient описывает проверку идентификатора во внешнем каталоге.
type CatalogClient interface {
	Lookup(ctx context.Context, externalID string) (*artcatalog.Artwork, error)
}

// PlaceService реализует бизнес-логику работы с местами.
type PlaceService struct {
	repo    PlaceRepository
	catalog CatalogClient
	log     *slog.Logger
}

// NewPlaceService создает новый экземпляр PlaceService.
func NewPlaceService(repo PlaceRepository, catalog CatalogClient, log *slog.Logger) *PlaceService {
	return &PlaceService{
		repo:    repo,
		catalog: catalog,
		log:     log,
	}
}

// Add добавляет место в проект пользователя.
//
// Порядок проверок: существование и принадлежность проекта, лимит мест,
// дубликат external_id, затем синхронная проверка во внешнем каталоге.
// Без подтверждения каталога место не сохраняется. Предварительные проверки
// здесь защищают от лишнего обращения к каталогу; окончательную проверку
// лимита и уникальности выполняет хранилище внутри транзакции вставки.
func (s *PlaceService) Add(ctx context.Context, userUID string, projectID int, req models.DummyPlace) (*models.Place, error) {
	existing, err := s.repo.ListPlaces(ctx, userUID, projectID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= models.MaxPlacesPerProject {
		return nil, errs.ErrPlaceLimitReached
	}
	for _, p := range existing {
		if p.ExternalID == req.ExternalID {
			return nil, errs.ErrPlaceAlreadyExists
		}
	}

	artwork, err := s.catalog.Lookup(ctx, req.ExternalID)
	if err != nil {
		return nil, err
	}

	place := models.Place{
		ExternalID: artwork.ExternalID,
		Title:      artwork.Title,
		ImageURL:   artwork.ImageURL,
	}
	if req.Notes != "" {
		notes := req.Notes
		place.Notes = &notes
	}

	res, err := s.repo.AddPlace(ctx, userUID, projectID, place)
	if err != nil {
		return nil, err
	}

	s.log.Info("added place to project",
		slog.Int("project_id", projectID),
		slog.Int("place_id", res.ID),
		slog.String("external_id", res.ExternalID))
	return res, nil
}

// Get возвращает место пользователя по ID.
func (s *PlaceService) Get(ctx context.Context, userUID string, placeID int) (*models.Place, error) {
	return s.repo.GetPlace(ctx, userUID, placeID)
}

// Update частично обновляет заметки и признак посещения места.
// Повторная проверка external_id в каталоге при обновлении не выполняется.
func (s *PlaceService) Update(ctx context.Context, userUID string, placeID int, req models.UpdatePlace) (*models.Place, error) {
	res, err := s.repo.UpdatePlace(ctx, userUID, placeID, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated place", slog.Int("place_id", placeID))
	return res, nil
}

// List возвращает места проекта пользователя в порядке добавления.
func (s *PlaceService) List(ctx context.Context, userUID string, projectID int) ([]*models.Place, error) {
	return s.repo.ListPlaces(ctx, userUID, projectID)
}
