package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FavoriteService manages the per-user favorites set. Movie identifiers are
// not checked against the catalog at write time; the set accepts any
// well-formed id and membership is resolved on read.
type FavoriteService interface {
	AddFavorite(ctx context.Context, username, movieID string) (*response.UserResponse, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*response.UserResponse, error)
	ListFavorites(ctx context.Context, username string) ([]string, error)
}

type favoriteService struct {
	userRepo repository.UserRepository
	favRepo  repository.FavoriteRepository
	log      *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		userRepo: repo.User,
		favRepo:  repo.Favorite,
		log:      log,
	}
}

func (fs *favoriteService) AddFavorite(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
	user, id, err := fs.resolve(ctx, username, movieID)
	if err != nil {
		return nil, err
	}

	if err := fs.favRepo.Add(ctx, user.ID, id); err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	fs.log.Info("Favorite added",
		zap.String("username", username),
		zap.String("movie_id", movieID))

	return fs.shape(ctx, username)
}

func (fs *favoriteService) RemoveFavorite(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
	user, id, err := fs.resolve(ctx, username, movieID)
	if err != nil {
		return nil, err
	}

	if err := fs.favRepo.Remove(ctx, user.ID, id); err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}

	fs.log.Info("Favorite removed",
		zap.String("username", username),
		zap.String("movie_id", movieID))

	return fs.shape(ctx, username)
}

func (fs *favoriteService) ListFavorites(ctx context.Context, username string) ([]string, error) {
	user, err := fs.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	favorites, err := fs.favRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	movieIDs := make([]string, 0, len(favorites))
	for _, movieID := range favorites {
		movieIDs = append(movieIDs, movieID.String())
	}

	return movieIDs, nil
}

// resolve looks up the addressed user and parses the movie id.
func (fs *favoriteService) resolve(ctx context.Context, username, movieID string) (*entity.User, uuid.UUID, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, uuid.Nil, ErrInvalidMovieID
	}

	user, err := fs.userRepo.FindByUsername(ctx, username)
	if err != nil {
		fs.log.Error("Failed to find user for favorite op",
			zap.Error(err),
			zap.String("username", username))
		return nil, uuid.Nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, uuid.Nil, ErrNotFound
	}

	return user, id, nil
}

// shape reloads the user with the current favorites set.
func (fs *favoriteService) shape(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := fs.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	favorites, err := fs.favRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	resp := response.UserToResponse(user, favorites)
	return &resp, nil
}
