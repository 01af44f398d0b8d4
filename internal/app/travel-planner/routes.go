// Package travelplanner предоставляет маршруты для основного приложения.
package travelplanner

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/health"
	placeadd "github.com/magabrotheeeer/travel-planner/internal/http/handlers/place/add"
	placelist "github.com/magabrotheeeer/travel-planner/internal/http/handlers/place/list"
	placeread "github.com/magabrotheeeer/travel-planner/internal/http/handlers/place/read"
	placeupdate "github.com/magabrotheeeer/travel-planner/internal/http/handlers/place/update"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/project/create"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/project/list"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/project/read"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/project/remove"
	"github.com/magabrotheeeer/travel-planner/internal/http/handlers/project/update"
	"github.com/magabrotheeeer/travel-planner/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/travel-planner/internal/services/auth"
	placeservice "github.com/magabrotheeeer/travel-planner/internal/services/place"
	projectservice "github.com/magabrotheeeer/travel-planner/internal/services/project"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *repository.Storage,
	authService *authservice.AuthService, projectService *projectservice.ProjectService,
	placeService *placeservice.PlaceService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/refresh", refresh.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, authService).ServeHTTP)
			r.Post("/projects", create.New(logger, projectService).ServeHTTP)
			r.Get("/projects", list.New(logger, projectService).ServeHTTP)
			r.Get("/projects/{id}", read.New(logger, projectService).ServeHTTP)
			r.Patch("/projects/{id}", update.New(logger, projectService).ServeHTTP)
			r.Delete("/projects/{id}", remove.New(logger, projectService).ServeHTTP)
			r.Post("/projects/{id}/places", placeadd.New(logger, placeService).ServeHTTP)
			r.Get("/projects/{id}/places", placelist.New(logger, placeService).ServeHTTP)
			r.Get("/places/{id}", placeread.New(logger, placeService).ServeHTTP)
			r.Patch("/places/{id}", placeupdate.New(logger, placeService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
