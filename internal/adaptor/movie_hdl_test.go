package adaptor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-api/internal/dto/request"
	"movie-api/internal/dto/response"
	"movie-api/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type stubMovieService struct {
	gotPage *request.PaginatedRequest
	movies  []response.MovieResponse
	err     error
}

func (s *stubMovieService) GetMovies(_ context.Context, req *request.PaginatedRequest) ([]response.MovieResponse, error) {
	s.gotPage = req
	return s.movies, s.err
}

func (s *stubMovieService) GetMovieByID(context.Context, int64) (*response.MovieResponse, error) {
	return nil, s.err
}

func (s *stubMovieService) CreateMovie(context.Context, *request.MovieRequest) (*response.MovieResponse, error) {
	return nil, s.err
}

func (s *stubMovieService) UpdateMovie(context.Context, int64, *request.MovieUpdateRequest) error {
	return s.err
}

type stubActorService struct {
	gotID int64
	err   error
}

func (s *stubActorService) DeleteActor(_ context.Context, actorID int64) error {
	s.gotID = actorID
	return s.err
}

type HandlerTestSuite struct {
	suite.Suite
	movies *stubMovieService
	actors *stubActorService
	router *chi.Mux
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.movies = &stubMovieService{movies: []response.MovieResponse{}}
	suite.actors = &stubActorService{}

	movieHandler := NewMovieHandler(suite.movies, zap.NewNop())
	actorHandler := NewActorHandler(suite.actors, zap.NewNop())

	suite.router = chi.NewRouter()
	suite.router.Get("/movies", movieHandler.GetMovies)
	suite.router.Post("/movies", movieHandler.CreateMovie)
	suite.router.Get("/movies/{id}", movieHandler.GetMovieByID)
	suite.router.Put("/movies/{id}", movieHandler.UpdateMovie)
	suite.router.Delete("/actors/{id}", actorHandler.DeleteActor)
}

func (suite *HandlerTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestGetMovies_Defaults() {
	w := suite.serve(http.MethodGet, "/movies", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[]`, w.Body.String())
	assert.Equal(suite.T(), &request.PaginatedRequest{Page: 1, PerPage: 10}, suite.movies.gotPage)
}

func (suite *HandlerTestSuite) TestGetMovies_ParsesQuery() {
	suite.serve(http.MethodGet, "/movies?page=3&per_page=7", "")
	assert.Equal(suite.T(), &request.PaginatedRequest{Page: 3, PerPage: 7}, suite.movies.gotPage)
}

func (suite *HandlerTestSuite) TestGetMovies_MalformedIsServerError() {
	w := suite.serve(http.MethodGet, "/movies?per_page=ten", "")

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Nil(suite.T(), suite.movies.gotPage)
}

func (suite *HandlerTestSuite) TestErrorMapping() {
	cases := []struct {
		name   string
		err    error
		method string
		url    string
		body   string
		code   int
		want   string
	}{
		{"not found", usecase.ErrMovieNotFound, http.MethodGet, "/movies/1", "", http.StatusNotFound, `{"message":"Movie not found"}`},
		{"missing fields", usecase.ErrMissingMovieFields, http.MethodPost, "/movies", `{}`, http.StatusBadRequest, `{"message":"Missing required fields (name and year_of_release)"}`},
		{"bad pagination", usecase.ErrInvalidPagination, http.MethodGet, "/movies?page=-1", "", http.StatusBadRequest, `{"message":"page and per_page must be positive integers"}`},
		{"storage failure", errors.New("disk I/O error"), http.MethodPut, "/movies/1", `{"name":"x","year_of_release":1}`, http.StatusInternalServerError, `{"message":"Internal server error"}`},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.movies.err = tc.err
			w := suite.serve(tc.method, tc.url, tc.body)

			assert.Equal(suite.T(), tc.code, w.Code)
			assert.JSONEq(suite.T(), tc.want, w.Body.String())
		})
	}
}

func (suite *HandlerTestSuite) TestCreateMovie_InvalidBody() {
	w := suite.serve(http.MethodPost, "/movies", `{"name":`)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.JSONEq(suite.T(), `{"message":"Invalid request body"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetMovieByID_OverflowingID() {
	w := suite.serve(http.MethodGet, "/movies/99999999999999999999", "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteActor() {
	w := suite.serve(http.MethodDelete, "/actors/42", "")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"message":"Actor deleted successfully"}`, w.Body.String())
	assert.Equal(suite.T(), int64(42), suite.actors.gotID)
}

func (suite *HandlerTestSuite) TestDeleteActor_StorageFailure() {
	suite.actors.err = errors.New("database is locked")
	w := suite.serve(http.MethodDelete, "/actors/42", "")

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
