package adaptor

import (
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetAllMovies(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "Movies retrieved successfully", movies)
}

// GetMovieByTitle handles GET /movies/{title}
func (h *MovieHandler) GetMovieByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if title == "" {
		utils.ResponseBadRequest(w, "Movie title is required", nil)
		return
	}

	movie, err := h.service.GetMovieByTitle(r.Context(), title)
	if err != nil {
		respondError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// GetGenre handles GET /genres/{genreName}
func (h *MovieHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "genreName")
	if name == "" {
		utils.ResponseBadRequest(w, "Genre name is required", nil)
		return
	}

	genre, err := h.service.GetGenre(r.Context(), name)
	if err != nil {
		respondError(w, h.log, err, "get genre")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved successfully", genre)
}

// GetDirector handles GET /directors/{name}
func (h *MovieHandler) GetDirector(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseBadRequest(w, "Director name is required", nil)
		return
	}

	director, err := h.service.GetDirector(r.Context(), name)
	if err != nil {
		respondError(w, h.log, err, "get director")
		return
	}

	utils.ResponseSuccess(w, "Director retrieved successfully", director)
}
