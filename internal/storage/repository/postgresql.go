// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями, проектами путешествий и местами.
// Предоставляет методы создания, чтения, обновления и удаления записей
// с обязательной фильтрацией по владельцу.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения.
const uniqueViolationCode = "23505"

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, проектами и местами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'travel_projects'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table travel_projects missing or query error: %w", err)
	}
	return nil
}

// isUniqueViolation распознает нарушение уникального ограничения PostgreSQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
