// Package remove реализует HTTP-обработчик удаления проекта.
//
// Проект с хотя бы одним посещенным местом удалить нельзя: запрос
// завершается с 409 Conflict, проект и места остаются без изменений.
package remove

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
)

// Service описывает интерфейс бизнес-логики удаления проекта.
type Service interface {
	Delete(ctx context.Context, userUID string, id int) error
}

// Handler обрабатывает запросы на удаление проекта.
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
// @Summary Удалить проект
// @Description Удаляет проект вместе с его местами. Проект с посещенными местами удалить нельзя.
// @Tags Projects
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {object} map[string]any "Проект удален"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Failure 409 {object} response.ErrorResponse "В проекте есть посещенные места"
// @Router /projects/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
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

	if err := h.service.Delete(r.Context(), userUID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrProjectNotFound):
			log.Error("project not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
		case errors.Is(err, errs.ErrProjectHasVisitedPlaces):
			log.Error("project has visited places", sl.Err(err))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("project has visited places and cannot be deleted"))
		default:
			log.Error("failed to delete project", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not delete project"))
		}
		return
	}

	log.Info("success to delete project", slog.Int("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "project deleted",
	}))
}
