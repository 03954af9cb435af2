package repository

import (
	"context"

	"movie-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie           MovieRepository
	Actor           ActorRepository
	Technician      TechnicianRepository
	MovieActor      MovieActorRepository
	MovieTechnician MovieTechnicianRepository

	db database.DBIface
}

func NewRepository(db database.DBIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:           NewMovieRepository(db, log),
		Actor:           NewActorRepository(db, log),
		Technician:      NewTechnicianRepository(db, log),
		MovieActor:      NewMovieActorRepository(db, log),
		MovieTechnician: NewMovieTechnicianRepository(db, log),
		db:              db,
	}
}

// Transaction runs fn atomically. Repository calls inside fn must be given
// the ctx passed to fn.
func (r *Repository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithTx(ctx, fn)
}
