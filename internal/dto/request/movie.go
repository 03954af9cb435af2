package request

import "movie-api/pkg/utils"

// MovieRequest is the body of POST /movies. Both name and year_of_release
// keys must be sent; year_of_release may be null.
type MovieRequest struct {
	Name          *string             `json:"name" validate:"required"`
	YearOfRelease utils.NullableInt64 `json:"year_of_release" validate:"required"`
	Actors        []string            `json:"actors,omitempty"`
	Technicians   []string            `json:"technicians,omitempty"`
}

// MovieUpdateRequest is the body of PUT /movies/{id}.
type MovieUpdateRequest struct {
	Name          *string             `json:"name" validate:"required"`
	YearOfRelease utils.NullableInt64 `json:"year_of_release" validate:"required"`
}
