// Package logout реализует HTTP-обработчик завершения сессии пользователя.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики завершения сессии.
type Service interface {
	Logout(ctx context.Context, userUID string) error
}

// Handler обрабатывает HTTP-запросы на выход из системы.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выход из системы
// @Description Удаляет активную сессию пользователя, refresh-токен становится недействительным.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Сессия завершена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Logout(r.Context(), userUID); err != nil {
		log.Error("failed to logout", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	log.Info("logout success")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "successfully logged out",
	}))
}
