package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Movie    *MovieHandler
	Favorite *FavoriteHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Favorite: NewFavoriteHandler(service.Favorite, log),
	}
}

// requireSelf checks that the authenticated principal addresses its own
// record. On a mismatch it writes a 403 and returns false; the handler must
// not proceed.
func requireSelf(w http.ResponseWriter, r *http.Request, username string) bool {
	principal, ok := utils.GetPrincipal(r.Context())
	if !ok || principal != username {
		utils.ResponseForbidden(w, "You can only modify your own account")
		return false
	}
	return true
}

// respondError maps service errors to the HTTP error classes. Repository
// failure detail is logged here and never exposed to the client.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseUnprocessable(w, "Validation failed", validationErr.Violations)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, usecase.ErrUsernameTaken):
		log.Warn(operation+" failed - username taken", zap.Error(err))
		utils.ResponseBadRequest(w, "Username already taken", nil)

	case errors.Is(err, usecase.ErrInvalidMovieID):
		log.Warn(operation+" failed - invalid movie id", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid username or password")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
