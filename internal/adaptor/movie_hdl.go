package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"movie-api/internal/dto/request"
	"movie-api/internal/usecase"
	"movie-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgMovieCreated        = "Movie and associated actors/technicians added successfully"
	msgMovieUpdated        = "Movie updated successfully"
	msgMovieNotFound       = "Movie not found"
	msgMissingMovieFields  = "Missing required fields (name and year_of_release)"
	msgInvalidPagination   = "page and per_page must be positive integers"
	msgInvalidRequestBody  = "Invalid request body"
	msgInternalServerError = "Internal server error"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies?page=&per_page=
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := utils.ParseIntDefault(query.Get("page"), request.DefaultPage)
	if err != nil {
		h.handleServiceError(w, err, "parse page")
		return
	}
	perPage, err := utils.ParseIntDefault(query.Get("per_page"), request.DefaultPerPage)
	if err != nil {
		h.handleServiceError(w, err, "parse per_page")
		return
	}

	movies, err := h.service.GetMovies(r.Context(), &request.PaginatedRequest{
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid create movie body", zap.Error(err))
		utils.ResponseBadRequest(w, msgInvalidRequestBody)
		return
	}

	if _, err := h.service.CreateMovie(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	// Clients depend on the historical shape: HTTP 200 with the intended
	// 201 carried as the second element of a JSON array.
	utils.ResponseJSON(w, http.StatusOK, []any{
		utils.Message{Message: msgMovieCreated},
		http.StatusCreated,
	})
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

// UpdateMovie handles PUT /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Invalid update movie body", zap.Error(err))
		utils.ResponseBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateMovie(r.Context(), movieID, &req); err != nil {
		h.handleServiceError(w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, msgMovieUpdated)
}

// movieID reads the {id} route param. The route pattern only admits digits,
// so failure here means the value overflows int64.
func (h *MovieHandler) movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, msgMovieNotFound)
		return 0, false
	}
	return movieID, true
}

// handleServiceError maps service errors to HTTP responses
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, msgMovieNotFound)

	case errors.Is(err, usecase.ErrMissingMovieFields):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, msgMissingMovieFields)

	case errors.Is(err, usecase.ErrInvalidPagination):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, msgInvalidPagination)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, msgInternalServerError)
	}
}
