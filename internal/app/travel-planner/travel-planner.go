// Package travelplanner собирает и запускает основное HTTP-приложение.
package travelplanner

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/travel-planner/internal/artcatalog"
	"github.com/magabrotheeeer/travel-planner/internal/config"
	"github.com/magabrotheeeer/travel-planner/internal/lib/jwt"
	"github.com/magabrotheeeer/travel-planner/internal/migrations"
	authservice "github.com/magabrotheeeer/travel-planner/internal/services/auth"
	placeservice "github.com/magabrotheeeer/travel-planner/internal/services/place"
	projectservice "github.com/magabrotheeeer/travel-planner/internal/services/project"
	"github.com/magabrotheeeer/travel-planner/internal/sessions"
	"github.com/magabrotheeeer/travel-planner/internal/storage/repository"
)

// App хранит зависимости запущенного приложения.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	sessions *sessions.Store
}

// New инициализирует хранилище, миграции, сессии, клиент каталога и
// собирает HTTP-сервер со всеми маршрутами.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	sessionStore, err := sessions.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	catalogClient := artcatalog.NewClient(cfg.CatalogURL, cfg.IIIFURL, cfg.TimeoutCatalog)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL, cfg.RefreshTTL)

	authService := authservice.NewAuthService(db, sessionStore, jwtMaker, cfg.RefreshTTL)
	projectService := projectservice.NewProjectService(db, catalogClient, logger)
	placeService := placeservice.NewPlaceService(db, catalogClient, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, db, authService, projectService, placeService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		sessions: sessionStore,
	}, nil
}

// Run запускает HTTP-сервер и гасит его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		a.sessions.Db.Close()
		return err
	}
}
