package usecase

import (
	"context"
	"fmt"

	"movie-api/internal/data/repository"

	"go.uber.org/zap"
)

type ActorService interface {
	DeleteActor(ctx context.Context, actorID int64) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

// DeleteActor unlinks the actor from every movie and removes it. Deleting an
// unknown actor succeeds and changes nothing.
func (s *actorService) DeleteActor(ctx context.Context, actorID int64) error {
	var unlinked, deleted int64

	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		linked, err := s.repo.MovieActor.ExistsByActorID(ctx, actorID)
		if err != nil {
			return err
		}

		if linked {
			if unlinked, err = s.repo.MovieActor.DeleteByActorID(ctx, actorID); err != nil {
				return err
			}
		}

		deleted, err = s.repo.Actor.Delete(ctx, actorID)
		return err
	})
	if err != nil {
		s.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.Int64("actor_id", actorID),
		)
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted",
		zap.Int64("actor_id", actorID),
		zap.Int64("associations_removed", unlinked),
		zap.Int64("rows_affected", deleted),
	)

	return nil
}
