package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetAllMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByTitle(ctx context.Context, title string) (*response.MovieResponse, error)
	GetGenre(ctx context.Context, name string) (*response.GenreResponse, error)
	GetDirector(ctx context.Context, name string) (*response.DirectorResponse, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	log       *zap.Logger
}

func NewMovieService(movieRepo repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		log:       log,
	}
}

func (ms *movieService) GetAllMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := ms.movieRepo.FindAll(ctx)
	if err != nil {
		ms.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	responses := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		responses = append(responses, response.MovieToResponse(movie))
	}

	return responses, nil
}

func (ms *movieService) GetMovieByTitle(ctx context.Context, title string) (*response.MovieResponse, error) {
	movie, err := ms.movieRepo.FindByTitle(ctx, title)
	if err != nil {
		ms.log.Error("Failed to find movie", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, ErrNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (ms *movieService) GetGenre(ctx context.Context, name string) (*response.GenreResponse, error) {
	genre, err := ms.movieRepo.FindGenreByName(ctx, name)
	if err != nil {
		ms.log.Error("Failed to find genre", zap.Error(err), zap.String("genre", name))
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, ErrNotFound
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (ms *movieService) GetDirector(ctx context.Context, name string) (*response.DirectorResponse, error) {
	director, err := ms.movieRepo.FindDirectorByName(ctx, name)
	if err != nil {
		ms.log.Error("Failed to find director", zap.Error(err), zap.String("director", name))
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, ErrNotFound
	}

	resp := response.DirectorToResponse(director)
	return &resp, nil
}
