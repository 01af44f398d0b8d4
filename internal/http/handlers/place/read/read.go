// Package read реализует HTTP-обработчик получения одного места.
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

// Service описывает интерфейс бизнес-логики чтения места.
type Service interface {
	Get(ctx context.Context, userUID string, placeID int) (*models.Place, error)
}

// Handler управляет HTTP-запросами на чтение места.
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
// @Summary Получить место по ID
// @Description Возвращает место, если оно принадлежит проекту текущего пользователя.
// @Tags Places
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID места"
// @Success 200 {object} map[string]any "Данные места"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Место не найдено"
// @Router /places/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.place.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	placeID, err := strconv.Atoi(chi.URLParam(r, "id"))
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

	res, err := h.service.Get(r.Context(), userUID, placeID)
	if err != nil {
		if errors.Is(err, errs.ErrPlaceNotFound) {
			log.Error("place not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("place not found"))
			return
		}
		log.Error("failed to read place", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read place"))
		return
	}

	log.Info("success to read place", slog.Int("place_id", res.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"place": res,
	}))
}
