// Package add реализует HTTP-обработчик добавления места в проект.
//
// Перед сохранением external_id синхронно проверяется во внешнем каталоге;
// без подтверждения каталога место не создается. Лимит в 10 мест и
// уникальность external_id внутри проекта перепроверяются хранилищем
// в транзакции вставки.
package add

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// Service описывает интерфейс бизнес-логики добавления места.
type Service interface {
	Add(ctx context.Context, userUID string, projectID int, req models.DummyPlace) (*models.Place, error)
}

// Handler управляет HTTP-запросами на добавление мест.
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
// @Summary Добавить место в проект
// @Description Проверяет external_id во внешнем каталоге и добавляет место с кэшированными метаданными.
// @Tags Places
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Param request body models.DummyPlace true "Данные нового места"
// @Success 201 {object} map[string]any "Созданное место"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или external_id не найден в каталоге"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Failure 409 {object} response.ErrorResponse "Лимит мест или дубликат external_id"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 503 {object} response.ErrorResponse "Каталог недоступен"
// @Router /projects/{id}/places [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.place.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	projectID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	var req models.DummyPlace
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

	res, err := h.service.Add(r.Context(), userUID, projectID, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProjectNotFound):
			log.Error("project not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
		case errors.Is(err, errs.ErrPlaceLimitReached):
			log.Error("place limit reached", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("project cannot have more than 10 places"))
		case errors.Is(err, errs.ErrPlaceAlreadyExists):
			log.Error("place already exists in project", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("place with this external id already exists in project"))
		case errors.Is(err, errs.ErrInvalidExternalID):
			log.Error("external id not found in catalog", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("external id not found in catalog"))
		case errors.Is(err, errs.ErrCatalogUnavailable):
			log.Error("art catalog unavailable", sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("art catalog is unavailable"))
		default:
			log.Error("failed to add place", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not add place"))
		}
		return
	}

	log.Info("success to add place", slog.Int("place_id", res.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"place": res,
	}))
}
