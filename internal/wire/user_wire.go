package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	favoriteHandler *adaptor.FavoriteHandler,
	guard func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	// Registration is the only unguarded mutation
	r.Post("/users", userHandler.Register)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(guard)

		r.Get("/users", userHandler.GetUsers)
		r.Get("/users/favorites/{username}", favoriteHandler.ListFavorites)
		r.Get("/users/{username}", userHandler.GetUser)
		r.Put("/users/{username}", userHandler.UpdateUser)
		r.Delete("/users/{username}", userHandler.DeleteUser)

		r.Post("/users/{username}/favoriteMovies/{movieID}", favoriteHandler.AddFavorite)
		r.Delete("/users/{username}/favoriteMovies/{movieID}", favoriteHandler.RemoveFavorite)
	})
}
