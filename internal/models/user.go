// Package models содержит доменные структуры приложения: пользователя,
// проект путешествия и место, а также вспомогательные типы для приёма
// данных из внешних источников (JSON-запросы).
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    `json:"uid"`      // Уникальный идентификатор пользователя
	Email        string    `json:"email"`    // Электронная почта (уникальная)
	Username     string    `json:"username"` // Имя пользователя (уникальное)
	PasswordHash string    `json:"-"`        // Хэш пароля пользователя
	CreatedAt    time.Time `json:"created_at"`
}
