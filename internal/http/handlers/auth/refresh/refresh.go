// Package refresh реализует HTTP-обработчик обновления access-токена
// по действующему refresh-токену.
package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/travel-planner/internal/http/response"
	"github.com/magabrotheeeer/travel-planner/internal/lib/errs"
	"github.com/magabrotheeeer/travel-planner/internal/lib/sl"
)

// Request — структура входных данных для обновления access-токена.
type Request struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Service описывает интерфейс бизнес-логики обновления токена.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Handler обрабатывает HTTP-запросы на обновление access-токена.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление access-токена
// @Description Выдает новый access-токен по действующему refresh-токену активной сессии.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Refresh-токен"
// @Success 200 {object} map[string]any "Новый access-токен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Недействительный или отозванный refresh-токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidToken) || errors.Is(err, errs.ErrSessionNotFound) {
			log.Error("invalid refresh token", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired refresh token"))
			return
		}
		log.Error("failed to refresh token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to refresh token"))
		return
	}

	log.Info("access token refreshed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
	}))
}
