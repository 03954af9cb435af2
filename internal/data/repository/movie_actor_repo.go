package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"movie-api/internal/data/entity"
	"movie-api/pkg/database"

	"go.uber.org/zap"
)

type MovieActorRepository interface {
	// Bridge table operations
	Create(ctx context.Context, movieActor *entity.MovieActor) error
	ExistsByActorID(ctx context.Context, actorID int64) (bool, error)
	DeleteByActorID(ctx context.Context, actorID int64) (int64, error)
}

type movieActorRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewMovieActorRepository(db database.DBIface, log *zap.Logger) MovieActorRepository {
	return &movieActorRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_actor")),
	}
}

func (r *movieActorRepository) Create(ctx context.Context, movieActor *entity.MovieActor) error {
	query := `INSERT INTO movie_actor (movie_id, actor_id) VALUES (?, ?)`

	if _, err := r.db.Exec(ctx, query, movieActor.MovieID, movieActor.ActorID); err != nil {
		r.log.Error("Failed to create movie_actor",
			zap.Error(err),
			zap.Int64("movie_id", movieActor.MovieID),
			zap.Int64("actor_id", movieActor.ActorID),
		)
		return fmt.Errorf("failed to create movie_actor: %w", err)
	}

	return nil
}

func (r *movieActorRepository) ExistsByActorID(ctx context.Context, actorID int64) (bool, error) {
	query := `SELECT 1 FROM movie_actor WHERE actor_id = ? LIMIT 1`

	var one int
	err := r.db.QueryRow(ctx, query, actorID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check movie_actor by actor ID",
			zap.Error(err),
			zap.Int64("actor_id", actorID),
		)
		return false, fmt.Errorf("failed to check movie_actor: %w", err)
	}

	return true, nil
}

func (r *movieActorRepository) DeleteByActorID(ctx context.Context, actorID int64) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM movie_actor WHERE actor_id = ?`, actorID)
	if err != nil {
		r.log.Error("Failed to delete movie_actor by actor ID",
			zap.Error(err),
			zap.Int64("actor_id", actorID),
		)
		return 0, fmt.Errorf("failed to delete movie_actor: %w", err)
	}

	return result.RowsAffected()
}
