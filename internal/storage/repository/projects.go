package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// CreateProject вставляет новый проект вместе с начальным списком мест
// в одной транзакции и возвращает ID проекта. Если вставка любого места
// не удалась, проект не сохраняется.
func (s *Storage) CreateProject(ctx context.Context, project models.Project, places []models.Place) (int, error) {
	const op = "storage.CreateProject"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var newID int
	query := `INSERT INTO travel_projects (user_uid, name, description, start_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	if err = tx.QueryRowContext(ctx, query,
		project.UserUID, project.Name, project.Description, project.StartDate).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	placeQuery := `INSERT INTO places (project_id, external_id, title, image_url, notes)
			       VALUES ($1, $2, $3, $4, $5)`
	for _, place := range places {
		if _, err = tx.ExecContext(ctx, placeQuery,
			newID, place.ExternalID, place.Title, place.ImageURL, place.Notes); err != nil {
			if isUniqueViolation(err) {
				return 0, fmt.Errorf("%s: %w", op, errs.ErrPlaceAlreadyExists)
			}
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListProjects возвращает проекты пользователя с пагинацией,
// отсортированные по дате создания (новые первыми), вместе с их местами.
func (s *Storage) ListProjects(ctx context.Context, userUID string, limit, offset int) ([]*models.Project, error) {
	const op = "storage.ListProjects"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, description, start_date, created_at
			  FROM travel_projects
			  WHERE user_uid = $1
			  ORDER BY created_at DESC, id DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Project
	for rows.Next() {
		var p models.Project
		if err = rows.Scan(&p.ID, &p.UserUID, &p.Name, &p.Description,
			&p.StartDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range result {
		if p.Places, err = s.listProjectPlaces(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return result, nil
}

// GetProject возвращает проект пользователя по ID вместе с его местами.
func (s *Storage) GetProject(ctx context.Context, userUID string, id int) (*models.Project, error) {
	const op = "storage.GetProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, description, start_date, created_at
			  FROM travel_projects
			  WHERE id = $1 AND user_uid = $2`
	p := &models.Project{}
	row := s.DB.QueryRowContext(ctx, query, id, userUID)
	if err := row.Scan(&p.ID, &p.UserUID, &p.Name, &p.Description,
		&p.StartDate, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, errs.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var err error
	if p.Places, err = s.listProjectPlaces(ctx, p.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// UpdateProject частично обновляет метаданные проекта.
// nil-поля патча остаются без изменений. Возвращает количество обновлённых строк.
func (s *Storage) UpdateProject(ctx context.Context, userUID string, id int, patch models.ProjectPatch) (int, error) {
	const op = "storage.UpdateProject"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE travel_projects
			  SET name = COALESCE($1, name),
			      description = COALESCE($2, description),
			      start_date = COALESCE($3, start_date)
			  WHERE id = $4 AND user_uid = $5`
	result, err := s.DB.ExecContext(ctx, query,
		patch.Name, patch.Description, patch.StartDate, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, errs.ErrProjectNotFound)
	}
	return int(rowsAffected), nil
}

// DeleteProject удаляет проект пользователя вместе с его местами (каскадно).
// Удаление запрещено, если хотя бы одно место проекта отмечено как посещенное.
func (s *Storage) DeleteProject(ctx context.Context, userUID string, id int) error {
	const op = "storage.DeleteProject"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Блокируем строку проекта, чтобы параллельный PATCH места
	// не успел выставить is_visited между проверкой и удалением.
	var projectID int
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM travel_projects WHERE id = $1 AND user_uid = $2 FOR UPDATE`,
		id, userUID).Scan(&projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, errs.ErrProjectNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	var hasVisited bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM places WHERE project_id = $1 AND is_visited)`,
		projectID).Scan(&hasVisited)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if hasVisited {
		return fmt.Errorf("%s: %w", op, errs.ErrProjectHasVisitedPlaces)
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM travel_projects WHERE id = $1`, projectID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
