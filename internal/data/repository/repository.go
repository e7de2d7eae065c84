package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Movie    MovieRepository
	Favorite FavoriteRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
	}
}
