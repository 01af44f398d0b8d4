package models

import "time"

// Project представляет собой проект путешествия пользователя.
// Поля Description и StartDate опциональны: nil означает, что
// значение не задано.
type Project struct {
	ID          int        `json:"id"`          // Идентификатор проекта
	UserUID     string     `json:"-"`           // Владелец проекта
	Name        string     `json:"name"`        // Название проекта
	Description *string    `json:"description"` // Описание (опционально)
	StartDate   *time.Time `json:"start_date"`  // Планируемая дата начала (опционально)
	CreatedAt   time.Time  `json:"created_at"`  // Дата создания записи
	Places      []*Place   `json:"places"`      // Места проекта в порядке добавления
}

// DummyProject используется для приёма данных из JSON-запроса на создание
// проекта, прежде чем конвертировать их в Project.
// Дата приходит в виде строки в формате 02-01-2006, чтобы её можно было
// валидировать и парсить вручную.
type DummyProject struct {
	Name        string       `json:"name" validate:"required,min=1,max=255"` // Название проекта
	Description string       `json:"description"`                            // Описание (опционально)
	StartDate   string       `json:"start_date"`                             // Дата начала в формате 02-01-2006
	Places      []DummyPlace `json:"places" validate:"max=10,dive"`          // Начальный список мест (не более 10)
}

// UpdateProject используется для частичного обновления метаданных проекта.
// nil-поле означает "не менять".
type UpdateProject struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"` // Дата начала в формате 02-01-2006
}

// ProjectPatch — распарсенный патч метаданных проекта для хранилища.
// nil-поле означает "не менять".
type ProjectPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
}
