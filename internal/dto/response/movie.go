package response

import "movie-api/internal/data/entity"

// MovieResponse is the wire form of a movies row. YearOfRelease is null when
// the column is NULL.
type MovieResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	YearOfRelease *int64 `json:"year_of_release"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	var year *int64
	if movie.YearOfRelease.Valid {
		y := movie.YearOfRelease.Int64
		year = &y
	}

	return MovieResponse{
		ID:            movie.ID,
		Name:          movie.Name,
		YearOfRelease: year,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
