package usecase

import (
	"context"
	"fmt"

	"movie-api/internal/data/entity"
	"movie-api/internal/data/repository"
	"movie-api/internal/dto/request"
	"movie-api/internal/dto/response"
	"movie-api/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Invalid pagination",
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvalidPagination, utils.FormatValidationErrors(errs))
	}

	movies, err := s.repo.Movie.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// CreateMovie stores the movie and, for every listed name, a fresh actor or
// technician row plus its association. Names are never matched against
// existing rows. All inserts commit together or not at all.
func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrMissingMovieFields, utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Name:          *req.Name,
		YearOfRelease: req.YearOfRelease.NullInt64(),
	}

	err := s.repo.Transaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Movie.Create(ctx, movie); err != nil {
			return err
		}

		for _, name := range req.Actors {
			actor := &entity.Actor{Name: name}
			if err := s.repo.Actor.Create(ctx, actor); err != nil {
				return err
			}
			if err := s.repo.MovieActor.Create(ctx, &entity.MovieActor{MovieID: movie.ID, ActorID: actor.ID}); err != nil {
				return err
			}
		}

		for _, name := range req.Technicians {
			technician := &entity.Technician{Name: name}
			if err := s.repo.Technician.Create(ctx, technician); err != nil {
				return err
			}
			if err := s.repo.MovieTechnician.Create(ctx, &entity.MovieTechnician{MovieID: movie.ID, TechnicianID: technician.ID}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("name", movie.Name),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("name", movie.Name),
		zap.Int("actor_count", len(req.Actors)),
		zap.Int("technician_count", len(req.Technicians)),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// UpdateMovie overwrites name and year by id. A missing movie is not an
// error: the update simply touches no rows.
func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrMissingMovieFields, utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Base:          entity.Base{ID: movieID},
		Name:          *req.Name,
		YearOfRelease: req.YearOfRelease.NullInt64(),
	}

	affected, err := s.repo.Movie.Update(ctx, movie)
	if err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movieID),
		zap.String("name", movie.Name),
		zap.Int64("rows_affected", affected),
	)

	return nil
}
