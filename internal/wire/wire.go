package wire

import (
	"net/http"
	"time"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := token.NewManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	tokens *token.Manager,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	guard := middleware.Auth(tokens, logger)

	// Apply routes
	wireAuth(r, handler.Auth)
	wireMovie(r, handler.Movie, guard)
	wireUser(r, handler.User, handler.Favorite, guard)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
