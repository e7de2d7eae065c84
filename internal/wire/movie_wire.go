package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, guard func(http.Handler) http.Handler) {
	// The whole catalog surface is read-only and requires authentication
	r.Group(func(r chi.Router) {
		r.Use(guard)

		r.Get("/movies", movieHandler.GetMovies)
		r.Get("/movies/{title}", movieHandler.GetMovieByTitle)
		r.Get("/genres/{genreName}", movieHandler.GetGenre)
		r.Get("/directors/{name}", movieHandler.GetDirector)
	})
}
