// Package read реализует HTTP-обработчик для получения конкретного проекта по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику для чтения
// проекта вместе с его местами и возвращает данные в JSON-формате.
// Чужой проект для вызывающего не существует: ответ 404 одинаков
// для отсутствующей и для чужой записи.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения проекта.
type Service interface {
	Get(ctx context.Context, userUID string, id int) (*models.Project, error)
}

// Handler обрабатывает запросы на получение проекта по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить проект по ID
// @Description Возвращает проект текущего пользователя вместе с его местами.
// @Tags Projects
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} map[string]any "Данные проекта"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /projects/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.Get(r.Context(), userUID, id)
	if err != nil {
		if errors.Is(err, errs.ErrProjectNotFound) {
			log.Error("project not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
			return
		}
		log.Error("failed to read project", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read project"))
		return
	}

	log.Info("success to read project", slog.Int("id", res.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"project": res,
	}))
}
