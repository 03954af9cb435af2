package wire

import (
	"movie-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)   // GET /movies
		r.Post("/", movieHandler.CreateMovie) // POST /movies

		// {id} only matches digits, like the other integer routes
		r.Get("/{id:[0-9]+}", movieHandler.GetMovieByID) // GET /movies/{id}
		r.Put("/{id:[0-9]+}", movieHandler.UpdateMovie)  // PUT /movies/{id}
	})
}
