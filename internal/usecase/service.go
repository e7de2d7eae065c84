package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Favorite FavoriteService
}

func NewService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, tokens, log),
		User:     NewUserService(repo, log),
		Movie:    NewMovieService(repo.Movie, log),
		Favorite: NewFavoriteService(repo, log),
	}
}
