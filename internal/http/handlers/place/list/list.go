// Package list реализует HTTP-обработчик получения списка мест проекта.
package list

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

// Service описывает интерфейс бизнес-логики получения списка мест.
type Service interface {
	List(ctx context.Context, userUID string, projectID int) ([]*models.Place, error)
}

// Handler управляет HTTP-запросами на получение списка мест проекта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить список мест проекта
// @Description Возвращает все места проекта текущего пользователя.
// @Tags Places
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} map[string]any "Список мест"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Router /projects/{id}/places [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.place.list"

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

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.List(r.Context(), userUID, projectID)
	if err != nil {
		if errors.Is(err, errs.ErrProjectNotFound) {
			log.Error("project not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
			return
		}
		log.Error("failed to list places", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list places"))
		return
	}

	log.Info("success to list places", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"places":     res,
	}))
}
