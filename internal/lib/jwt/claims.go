// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки пары access/refresh токенов.
// MakerImpl — конкретная реализация с использованием секретного ключа и сроков жизни.
package jwt

import (
	"time"
)

// Типы токенов, записываемые в claim token_type.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
//
// Access-токен используется для авторизации запросов,
// refresh-токен — для обновления access-токена без повторного логина.
type Maker interface {
	// GenerateAccessToken создает короткоживущий access-токен.
	GenerateAccessToken(username, userUID string) (string, error)
	// GenerateRefreshToken создает долгоживущий refresh-токен.
	GenerateRefreshToken(username, userUID string) (string, error)
	// ParseToken возвращает *CustomClaims с username и uid пользователя.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токенов (TTL).
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов.
	tokenTTL   time.Duration // Время жизни access-токена.
	refreshTTL time.Duration // Время жизни refresh-токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, tokenTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		tokenTTL:   tokenTTL,
		refreshTTL: refreshTTL,
	}
}
