// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-planner/internal/lib/password"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionStore описывает хранилище refresh-токенов.
type SessionStore interface {
	// Save сохраняет refresh-токен пользователя, вытесняя предыдущий.
	Save(ctx context.Context, userUID, refreshToken string, ttl time.Duration) error
	// Get возвращает сохранённый refresh-токен; false — сессии нет.
	Get(ctx context.Context, userUID string) (string, bool, error)
	// Delete удаляет сессию пользователя.
	Delete(ctx context.Context, userUID string) error
}

// AuthService отвечает за регистрацию, авторизацию, обновление и отзыв токенов.
type AuthService struct {
	users      UserRepository
	sessions   SessionStore
	jwtMaker   jwt.Maker
	refreshTTL time.Duration
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionStore, jwtMaker jwt.Maker, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtMaker:   jwtMaker,
		refreshTTL: refreshTTL,
	}
}

// Register создает нового пользователя с хэшированием пароля.
func (s *AuthService) Register(ctx context.Context, email, username, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя, генерирует пару access/refresh токенов
// и сохраняет refresh-токен в хранилище сессий. Предыдущая сессия пользователя
// при этом становится недействительной.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (token, refresh string, err error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
	}
	token, err = s.jwtMaker.GenerateAccessToken(user.Username, user.UID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	refresh, err = s.jwtMaker.GenerateRefreshToken(user.Username, user.UID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	if err = s.sessions.Save(ctx, user.UID, refresh, s.refreshTTL); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return token, refresh, nil
}

// Refresh выдает новый access-токен по действующему refresh-токену.
//
// Токен должен пройти проверку подписи, иметь тип refresh и совпадать
// с токеном активной сессии пользователя в хранилище.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	const op = "services.auth.Refresh"
	claims, err := s.jwtMaker.ParseToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return "", fmt.Errorf("%s: %w", op, errs.ErrInvalidToken)
	}

	stored, found, err := s.sessions.Get(ctx, claims.UserUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !found || stored != refreshToken {
		return "", fmt.Errorf("%s: %w", op, errs.ErrSessionNotFound)
	}

	token, err := s.jwtMaker.GenerateAccessToken(claims.Username, claims.UserUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Logout удаляет активную сессию пользователя, делая его refresh-токен недействительным.
func (s *AuthService) Logout(ctx context.Context, userUID string) error {
	const op = "services.auth.Logout"
	if err := s.sessions.Delete(ctx, userUID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ValidateToken проверяет access-токен и возвращает информацию о пользователе.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, error) {
	const op = "services.auth.ValidateToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil || claims.TokenType != jwt.TokenTypeAccess {
		return nil, fmt.Errorf("%s: %w", op, errs.ErrInvalidToken)
	}
	return &models.User{
		Username: claims.Username,
		UID:      claims.UserUID,
	}, nil
}
