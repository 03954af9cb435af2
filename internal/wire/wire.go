package wire

import (
	"movie-api/internal/adaptor"
	"movie-api/internal/data/repository"
	"movie-api/internal/usecase"
	"movie-api/pkg/database"
	"movie-api/pkg/middleware"
	"movie-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds repositories, services and handlers on top of db
func Wiring(db *database.DB, config *utils.Config, logger *zap.Logger) *App {
	repo := repository.NewRepository(db, logger)
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, db, logger)

	router := setupRouter(handler, db, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	db *database.DB,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.DBSession(db, logger))

	// Apply routes
	wireMovie(r, handler.Movie)
	wireActor(r, handler.Actor)

	r.Get("/health", handler.Health.Health)

	logger.Debug("Routes registered", zap.String("app", config.App.Name))

	return r
}
