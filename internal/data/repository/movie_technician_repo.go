package repository

import (
	"context"
	"fmt"

	"movie-api/internal/data/entity"
	"movie-api/pkg/database"

	"go.uber.org/zap"
)

type MovieTechnicianRepository interface {
	Create(ctx context.Context, movieTechnician *entity.MovieTechnician) error
}

type movieTechnicianRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewMovieTechnicianRepository(db database.DBIface, log *zap.Logger) MovieTechnicianRepository {
	return &movieTechnicianRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_technician")),
	}
}

func (r *movieTechnicianRepository) Create(ctx context.Context, movieTechnician *entity.MovieTechnician) error {
	query := `INSERT INTO movie_technician (movie_id, technician_id) VALUES (?, ?)`

	if _, err := r.db.Exec(ctx, query, movieTechnician.MovieID, movieTechnician.TechnicianID); err != nil {
		r.log.Error("Failed to create movie_technician",
			zap.Error(err),
			zap.Int64("movie_id", movieTechnician.MovieID),
			zap.Int64("technician_id", movieTechnician.TechnicianID),
		)
		return fmt.Errorf("failed to create movie_technician: %w", err)
	}

	return nil
}
