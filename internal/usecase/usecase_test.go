package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"movie-api/internal/data/entity"
	"movie-api/internal/data/repository"
	"movie-api/internal/dto/request"
	"movie-api/pkg/database"
	"movie-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type ServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	repo    *repository.Repository
	service *Service
	ctx     context.Context
}

func (suite *ServiceTestSuite) SetupTest() {
	db, err := database.InitDB(utils.DatabaseConfig{
		Driver:   database.DriverSQLite,
		Path:     filepath.Join(suite.T().TempDir(), "service.db"),
		MaxConns: 4,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.InitSchema(context.Background(), db))

	suite.db = db
	suite.repo = repository.NewRepository(db, zap.NewNop())
	suite.service = NewService(suite.repo, zap.NewNop())
	suite.ctx = context.Background()
}

func (suite *ServiceTestSuite) TearDownTest() {
	suite.db.Close()
}

func (suite *ServiceTestSuite) count(table string) int {
	var n int
	suite.Require().NoError(suite.db.QueryRow(suite.ctx, "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// linkedIDs returns the cast ids a bridge table links to movieID.
func (suite *ServiceTestSuite) linkedIDs(table, column string, movieID int64) []int64 {
	rows, err := suite.db.Query(suite.ctx, "SELECT "+column+" FROM "+table+" WHERE movie_id = ? ORDER BY "+column, movieID)
	suite.Require().NoError(err)
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		suite.Require().NoError(rows.Scan(&id))
		ids = append(ids, id)
	}
	suite.Require().NoError(rows.Err())
	return ids
}

func strPtr(s string) *string { return &s }

func (suite *ServiceTestSuite) TestCreateMovie_CreatesCastRowsAndAssociations() {
	resp, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{
		Name:          strPtr("Heat"),
		YearOfRelease: utils.Int64(1995),
		Actors:        []string{"Al Pacino", "Robert De Niro", "Val Kilmer"},
		Technicians:   []string{"Dante Spinotti", "Elliot Goldenthal"},
	})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), 3, suite.count("actors"))
	assert.Equal(suite.T(), 2, suite.count("technicians"))

	assert.Len(suite.T(), suite.linkedIDs("movie_actor", "actor_id", resp.ID), 3)
	assert.Len(suite.T(), suite.linkedIDs("movie_technician", "technician_id", resp.ID), 2)

	assert.Equal(suite.T(), 3, suite.count("movie_actor"))
	assert.Equal(suite.T(), 2, suite.count("movie_technician"))
}

func (suite *ServiceTestSuite) TestCreateMovie_DoesNotDeduplicateNames() {
	for i := 0; i < 2; i++ {
		_, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{
			Name:          strPtr("Sequel"),
			YearOfRelease: utils.Int64(2000 + int64(i)),
			Actors:        []string{"Same Name"},
		})
		suite.Require().NoError(err)
	}

	assert.Equal(suite.T(), 2, suite.count("actors"))
}

func (suite *ServiceTestSuite) TestCreateMovie_MissingFields() {
	_, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{YearOfRelease: utils.Int64(1999)})

	assert.ErrorIs(suite.T(), err, ErrMissingMovieFields)
	assert.Contains(suite.T(), err.Error(), "Name")
	assert.Equal(suite.T(), 0, suite.count("movies"))
}

func (suite *ServiceTestSuite) TestGetMovieByID() {
	created, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{
		Name:          strPtr("Inception"),
		YearOfRelease: utils.Int64(2010),
	})
	suite.Require().NoError(err)

	got, err := suite.service.Movie.GetMovieByID(suite.ctx, created.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Inception", got.Name)
	assert.Equal(suite.T(), int64(2010), *got.YearOfRelease)

	_, err = suite.service.Movie.GetMovieByID(suite.ctx, created.ID+100)
	assert.ErrorIs(suite.T(), err, ErrMovieNotFound)
}

func (suite *ServiceTestSuite) TestGetMovies_Pagination() {
	for i := 0; i < 7; i++ {
		_, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{
			Name:          strPtr("Movie"),
			YearOfRelease: utils.Int64(2000 + int64(i)),
		})
		suite.Require().NoError(err)
	}

	page, err := suite.service.Movie.GetMovies(suite.ctx, &request.PaginatedRequest{Page: 2, PerPage: 5})
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	assert.Equal(suite.T(), int64(2005), *page[0].YearOfRelease)

	_, err = suite.service.Movie.GetMovies(suite.ctx, &request.PaginatedRequest{Page: 0, PerPage: 5})
	assert.ErrorIs(suite.T(), err, ErrInvalidPagination)
}

func (suite *ServiceTestSuite) TestUpdateMovie_MissingIDSucceeds() {
	err := suite.service.Movie.UpdateMovie(suite.ctx, 999999, &request.MovieUpdateRequest{
		Name:          strPtr("Nobody"),
		YearOfRelease: utils.Int64(2001),
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, suite.count("movies"))

	err = suite.service.Movie.UpdateMovie(suite.ctx, 1, &request.MovieUpdateRequest{Name: strPtr("No year")})
	assert.ErrorIs(suite.T(), err, ErrMissingMovieFields)
}

func (suite *ServiceTestSuite) TestDeleteActor_RemovesAssociationsOnly() {
	first, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{
		Name: strPtr("Heat"), YearOfRelease: utils.Int64(1995), Actors: []string{"Al Pacino"},
	})
	suite.Require().NoError(err)

	actorID := suite.linkedIDs("movie_actor", "actor_id", first.ID)[0]

	second, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{
		Name: strPtr("The Irishman"), YearOfRelease: utils.Int64(2019),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.MovieActor.Create(suite.ctx, &entity.MovieActor{MovieID: second.ID, ActorID: actorID}))

	suite.Require().NoError(suite.service.Actor.DeleteActor(suite.ctx, actorID))

	assert.Equal(suite.T(), 0, suite.count("movie_actor"))
	assert.Equal(suite.T(), 0, suite.count("actors"))
	assert.Equal(suite.T(), 2, suite.count("movies"))

	// second delete is a no-op
	assert.NoError(suite.T(), suite.service.Actor.DeleteActor(suite.ctx, actorID))
}

func (suite *ServiceTestSuite) TestCreateMovie_NullYear() {
	var req request.MovieRequest
	suite.Require().NoError(json.Unmarshal([]byte(`{"name":"Untitled","year_of_release":null}`), &req))

	created, err := suite.service.Movie.CreateMovie(suite.ctx, &req)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), created.YearOfRelease)

	got, err := suite.service.Movie.GetMovieByID(suite.ctx, created.ID)
	suite.Require().NoError(err)
	assert.Nil(suite.T(), got.YearOfRelease)
}

func (suite *ServiceTestSuite) TestDeleteActor_ConcurrentWithCreate() {
	const workers = 30

	var wg sync.WaitGroup
	errs := make(chan error, 2*workers)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := suite.service.Movie.CreateMovie(suite.ctx, &request.MovieRequest{
				Name:          strPtr(fmt.Sprintf("Movie %d", i)),
				YearOfRelease: utils.Int64(2000),
				Actors:        []string{"Extra"},
			})
			errs <- err
		}(i)
		go func(i int) {
			defer wg.Done()
			errs <- suite.service.Actor.DeleteActor(suite.ctx, int64(i+1))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(suite.T(), err)
	}
	assert.Equal(suite.T(), workers, suite.count("movies"))
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
