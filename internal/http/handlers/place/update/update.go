// Package update реализует HTTP-обработчик частичного обновления места.
//
// Изменять можно только заметки и флаг посещения, каталожные метаданные
// (external_id, title, image_url) неизменяемы после создания.
package update

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

// Service описывает интерфейс бизнес-логики обновления места.
type Service interface {
	Update(ctx context.Context, userUID string, placeID int, req models.UpdatePlace) (*models.Place, error)
}

// Handler управляет HTTP-запросами на обновление места.
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
// @Summary Обновить место
// @Description Частично обновляет заметки и статус посещения места.
// @Tags Places
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID места"
// @Param request body models.UpdatePlace true "Поля для обновления"
// @Success 200 {object} map[string]any "Обновленное место"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Место не найдено"
// @Router /places/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.place.update"

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

	var req models.UpdatePlace
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.Update(r.Context(), userUID, placeID, req)
	if err != nil {
		if errors.Is(err, errs.ErrPlaceNotFound) {
			log.Error("place not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("place not found"))
			return
		}
		log.Error("failed to update place", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update place"))
		return
	}

	log.Info("success to update place", slog.Int("place_id", res.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"place": res,
	}))
}
