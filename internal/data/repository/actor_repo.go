package repository

import (
	"context"
	"fmt"

	"movie-api/internal/data/entity"
	"movie-api/pkg/database"

	"go.uber.org/zap"
)

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	// Delete removes the actor row and reports rows affected; a missing id is not an error.
	Delete(ctx context.Context, id int64) (int64, error)
}

type actorRepository struct {
	db  database.DBIface
	log *zap.Logger
}

func NewActorRepository(db database.DBIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	id, err := r.db.Insert(ctx, `INSERT INTO actors (name) VALUES (?)`, actor.Name)
	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.Name),
		)
		return fmt.Errorf("failed to create actor: %w", err)
	}

	actor.ID = id
	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM actors WHERE id = ?`, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.Int64("actor_id", id),
		)
		return 0, fmt.Errorf("failed to delete actor: %w", err)
	}

	return result.RowsAffected()
}
