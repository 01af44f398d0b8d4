package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// AddPlace добавляет место в проект пользователя.
//
// Проверка лимита мест и уникальности external_id выполняется внутри одной
// транзакции со вставкой: строка проекта блокируется (FOR UPDATE), поэтому
// два параллельных запроса не могут оба пройти проверку лимита, а дубликат
// external_id отлавливается уникальным ограничением таблицы.
func (s *Storage) AddPlace(ctx context.Context, userUID string, projectID int, place models.Place) (*models.Place, error) {
	const op = "storage.AddPlace"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var ownerID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM travel_projects WHERE id = $1 AND user_uid = $2 FOR UPDATE`,
		projectID, userUID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM places WHERE project_id = $1`, projectID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count >= models.MaxPlacesPerProject {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrPlaceLimitReached)
	}

	res := place
	res.ProjectID = projectID
	query := `INSERT INTO places (project_id, external_id, title, image_url, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, is_visited, created_at`
	err = tx.QueryRowContext(ctx, query,
		projectID, place.ExternalID, place.Title, place.ImageURL, place.Notes).
		Scan(&res.ID, &res.IsVisited, &res.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrPlaceAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &res, nil
}

// GetPlace возвращает место по ID, если проект места принадлежит пользователю.
func (s *Storage) GetPlace(ctx context.Context, userUID string, placeID int) (*models.Place, error) {
	const op = "storage.GetPlace"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.project_id, p.external_id, p.title, p.image_url,
			      p.notes, p.is_visited, p.created_at
			  FROM places p
			  JOIN travel_projects tp ON tp.id = p.project_id
			  WHERE p.id = $1 AND tp.user_uid = $2`
	p := &models.Place{}
	row := s.DB.QueryRowContext(ctx, query, placeID, userUID)
	if err := row.Scan(&p.ID, &p.ProjectID, &p.ExternalID, &p.Title, &p.ImageURL,
		&p.Notes, &p.IsVisited, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrPlaceNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdatePlace частично обновляет заметки и признак посещения места.
// nil-поля патча остаются без изменений.
func (s *Storage) UpdatePlace(ctx context.Context, userUID string, placeID int, patch models.UpdatePlace) (*models.Place, error) {
	const op = "storage.UpdatePlace"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE places p
			  SET notes = COALESCE($1, p.notes),
			      is_visited = COALESCE($2, p.is_visited)
			  FROM travel_projects tp
			  WHERE p.id = $3 AND tp.id = p.project_id AND tp.user_uid = $4
			  RETURNING p.id, p.project_id, p.external_id, p.title, p.image_url,
			      p.notes, p.is_visited, p.created_at`
	res := &models.Place{}
	row := s.DB.QueryRowContext(ctx, query, patch.Notes, patch.IsVisited, placeID, userUID)
	if err := row.Scan(&res.ID, &res.ProjectID, &res.ExternalID, &res.Title, &res.ImageURL,
		&res.Notes, &res.IsVisited, &res.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrPlaceNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// ListPlaces возвращает места проекта пользователя в порядке добавления.
func (s *Storage) ListPlaces(ctx context.Context, userUID string, projectID int) ([]*models.Place, error) {
	const op = "storage.ListPlaces"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var ownerID int
	err := s.DB.QueryRowContext(ctx,
		`SELECT id FROM travel_projects WHERE id = $1 AND user_uid = $2`,
		projectID, userUID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.listProjectPlaces(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// listProjectPlaces возвращает места проекта без проверки владельца.
// Вызывающий обязан проверить владельца сам.
func (s *Storage) listProjectPlaces(ctx context.Context, projectID int) ([]*models.Place, error) {
	query := `SELECT id, project_id, external_id, title, image_url,
			      notes, is_visited, created_at
			  FROM places
			  WHERE project_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Place
	for rows.Next() {
		var p models.Place
		if err = rows.Scan(&p.ID, &p.ProjectID, &p.ExternalID, &p.Title, &p.ImageURL,
			&p.Notes, &p.IsVisited, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
