package usecase

import (
	"movie-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie MovieService
	Actor ActorService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie: NewMovieService(repo, log),
		Actor: NewActorService(repo, log),
	}
}
