// Package create реализует HTTP-обработчик для создания новых проектов путешествий.
//
// Handler принимает JSON-запрос с данными проекта и опциональным начальным
// списком мест, валидирует их, извлекает UID пользователя из контекста,
// вызывает бизнес-логику создания проекта и возвращает ID созданной записи.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// Service описывает интерфейс бизнес-логики создания проекта.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyProject) (int, error)
}

// Handler управляет HTTP-запросами на создание новых проектов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новый проект путешествия
// @Description Создает проект, опционально с начальным списком мест (не более 10, каждое проверяется в каталоге).
// @Tags Projects
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyProject true "Данные нового проекта"
// @Success 201 {object} map[string]any "Успешное создание проекта"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или непроверяемый external_id"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Дубликат места или превышен лимит"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Failure 503 {object} response.ErrorResponse "Каталог недоступен"
// @Router /projects [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProject
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPlaceLimitReached):
			log.Error("too many initial places", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("project cannot have more than 10 places"))
		case errors.Is(err, errs.ErrPlaceAlreadyExists):
			log.Error("duplicate external id in request", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("duplicate external id in places"))
		case errors.Is(err, errs.ErrInvalidExternalID):
			log.Error("external id not found in catalog", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("external id not found in catalog"))
		case errors.Is(err, errs.ErrCatalogUnavailable):
			log.Error("art catalog unavailable", sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("art catalog is unavailable"))
		case errors.Is(err, errs.ErrInvalidStartDate):
			log.Error("invalid start date", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid start date, expected format 02-01-2006"))
		default:
			log.Error("failed to create project", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create project"))
		}
		return
	}

	log.Info("success to create project", slog.Int("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
