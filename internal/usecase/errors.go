package usecase

import "errors"

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrMissingMovieFields = errors.New("missing required fields (name and year_of_release)")
	ErrInvalidPagination  = errors.New("page and per_page must be positive integers")
)
