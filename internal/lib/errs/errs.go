// Package errs содержит бизнес-ошибки приложения.
//
// Хранилище и сервисы оборачивают эти ошибки через fmt.Errorf("%s: %w", ...),
// а HTTP-обработчики распознают их через errors.Is и подбирают статус ответа.
package errs

import "errors"

var (
	// ErrUserAlreadyExists — пользователь с таким email или username уже зарегистрирован.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound — пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials — неверная пара логин/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken — токен не прошел проверку подписи или истек.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrSessionNotFound — refresh-токен отсутствует в хранилище сессий.
	ErrSessionNotFound = errors.New("session not found")

	// ErrProjectNotFound — проект не существует или принадлежит другому пользователю.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidStartDate — дата начала не соответствует формату 02-01-2006.
	ErrInvalidStartDate = errors.New("invalid start date")
	// ErrProjectHasVisitedPlaces — проект нельзя удалить, пока есть посещенные места.
	ErrProjectHasVisitedPlaces = errors.New("project has visited places")

	// ErrPlaceNotFound — место не существует или принадлежит другому пользователю.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrPlaceLimitReached — в проекте уже максимальное количество мест.
	ErrPlaceLimitReached = errors.New("place limit reached")
	// ErrPlaceAlreadyExists — место с таким external_id уже есть в проекте.
	ErrPlaceAlreadyExists = errors.New("place already exists in project")

	// ErrInvalidExternalID — каталог не знает такого идентификатора.
	ErrInvalidExternalID = errors.New("external id not found in catalog")
	// ErrCatalogUnavailable — каталог недоступен после повторной попытки.
	ErrCatalogUnavailable = errors.New("art catalog is unavailable")
)
