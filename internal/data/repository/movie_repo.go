package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	FindGenreByName(ctx context.Context, name string) (*entity.Genre, error)
	FindDirectorByName(ctx context.Context, name string) (*entity.Director, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `
	id, title, description,
	genre_name, genre_description,
	director_name, director_bio, director_birth_year, director_death_year,
	image_path, featured, created_at, updated_at
`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Director.BirthYear,
		&movie.Director.DeathYear,
		&movie.ImagePath,
		&movie.Featured,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE title = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, title))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movie by title %s: %w", title, err)
	}

	return movie, nil
}

func (r *movieRepository) FindGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	query := `
		SELECT genre_name, genre_description
		FROM movies
		WHERE genre_name = $1
		LIMIT 1
	`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, name).Scan(&genre.Name, &genre.Description)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre",
			zap.Error(err),
			zap.String("genre", name),
		)
		return nil, fmt.Errorf("find genre %s: %w", name, err)
	}

	return &genre, nil
}

func (r *movieRepository) FindDirectorByName(ctx context.Context, name string) (*entity.Director, error) {
	query := `
		SELECT director_name, director_bio, director_birth_year, director_death_year
		FROM movies
		WHERE director_name = $1
		LIMIT 1
	`

	var director entity.Director
	err := r.db.QueryRow(ctx, query, name).Scan(
		&director.Name,
		&director.Bio,
		&director.BirthYear,
		&director.DeathYear,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director",
			zap.Error(err),
			zap.String("director", name),
		)
		return nil, fmt.Errorf("find director %s: %w", name, err)
	}

	return &director, nil
}
