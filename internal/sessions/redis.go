// Package sessions реализует хранилище refresh-токенов на основе Redis.
//
// На пользователя хранится одна активная сессия: повторный логин
// перезаписывает предыдущий refresh-токен, делая его недействительным.
package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/travel-planner/internal/config"
)

// Store хранит refresh-токены пользователей в Redis.
type Store struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет доступность соединения.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "sessions.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db}, nil
}

func sessionKey(userUID string) string {
	return fmt.Sprintf("session:%s", userUID)
}

// Save сохраняет refresh-токен пользователя, вытесняя предыдущий.
// Время жизни ключа совпадает со временем жизни refresh-токена.
func (s *Store) Save(ctx context.Context, userUID, refreshToken string, ttl time.Duration) error {
	const op = "sessions.Save"
	if err := s.Db.Set(ctx, sessionKey(userUID), refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Get возвращает сохранённый refresh-токен пользователя.
// Второе значение false означает отсутствие активной сессии.
func (s *Store) Get(ctx context.Context, userUID string) (string, bool, error) {
	const op = "sessions.Get"
	val, err := s.Db.Get(ctx, sessionKey(userUID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Delete удаляет сессию пользователя.
func (s *Store) Delete(ctx context.Context, userUID string) error {
	const op = "sessions.Delete"
	if err := s.Db.Del(ctx, sessionKey(userUID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
