package models

import "time"

// MaxPlacesPerProject — максимальное количество мест в одном проекте.
const MaxPlacesPerProject = 10

// Place представляет место проекта, привязанное к записи каталога
// Art Institute of Chicago. Title и ImageURL кэшируются из каталога
// в момент создания и больше не перепроверяются.
type Place struct {
	ID         int       `json:"id"`          // Идентификатор места
	ProjectID  int       `json:"project_id"`  // Проект-владелец
	ExternalID string    `json:"external_id"` // Идентификатор записи во внешнем каталоге
	Title      string    `json:"title"`       // Название экспоната из каталога
	ImageURL   string    `json:"image_url"`   // Ссылка на изображение из каталога
	Notes      *string   `json:"notes"`       // Заметки пользователя (опционально)
	IsVisited  bool      `json:"is_visited"`  // Признак посещения
	CreatedAt  time.Time `json:"created_at"`  // Дата добавления
}

// DummyPlace используется для приёма данных из JSON-запроса на добавление места.
type DummyPlace struct {
	ExternalID string `json:"external_id" validate:"required,min=1,max=255"` // ID записи каталога
	Notes      string `json:"notes"`                                         // Заметки (опционально)
}

// UpdatePlace используется для частичного обновления места.
// nil-поле означает "не менять".
type UpdatePlace struct {
	Notes     *string `json:"notes"`
	IsVisited *bool   `json:"is_visited"`
}
