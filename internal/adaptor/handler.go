package adaptor

import (
	"movie-api/internal/usecase"
	"movie-api/pkg/database"

	"go.uber.org/zap"
)

type Handler struct {
	Movie  *MovieHandler
	Actor  *ActorHandler
	Health *HealthHandler
}

func NewHandler(service *usecase.Service, db database.DBIface, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, log),
		Actor:  NewActorHandler(service.Actor, log),
		Health: NewHealthHandler(db, log),
	}
}
