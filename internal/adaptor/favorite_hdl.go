package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	service usecase.FavoriteService
	log     *zap.Logger
}

func NewFavoriteHandler(service usecase.FavoriteService, log *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		service: service,
		log:     log,
	}
}

// AddFavorite handles POST /users/{username}/favoriteMovies/{movieID}
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	movieID := chi.URLParam(r, "movieID")
	if !requireSelf(w, r, username) {
		return
	}

	user, err := h.service.AddFavorite(r.Context(), username, movieID)
	if err != nil {
		respondError(w, h.log, err, "add favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite added successfully", user)
}

// RemoveFavorite handles DELETE /users/{username}/favoriteMovies/{movieID}
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	movieID := chi.URLParam(r, "movieID")
	if !requireSelf(w, r, username) {
		return
	}

	user, err := h.service.RemoveFavorite(r.Context(), username, movieID)
	if err != nil {
		respondError(w, h.log, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "Favorite removed successfully", user)
}

// ListFavorites handles GET /users/favorites/{username}
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	favorites, err := h.service.ListFavorites(r.Context(), username)
	if err != nil {
		respondError(w, h.log, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "Favorites retrieved successfully", favorites)
}
