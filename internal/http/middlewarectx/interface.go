package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/travel-planner/internal/models"
)

// Service описывает интерфейс сервиса для валидации access-токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}
