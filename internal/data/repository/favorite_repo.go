package repository

import (
	"context"
	"fmt"

	"movie-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FavoriteRepository mutates a user's favorites set. Every operation is a
// single statement, so two concurrent calls for the same user cannot lose
// each other's update, and re-adding an existing movie is a no-op.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, movieID uuid.UUID) error
	Remove(ctx context.Context, userID, movieID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

func (r *favoriteRepository) Add(ctx context.Context, userID, movieID uuid.UUID) error {
	query := `
		INSERT INTO user_favorites (user_id, movie_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("add favorite %s for user %s: %w", movieID.String(), userID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND movie_id = $2`

	_, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("remove favorite %s for user %s: %w", movieID.String(), userID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT movie_id
		FROM user_favorites
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list favorites",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list favorites for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var movieIDs []uuid.UUID
	for rows.Next() {
		var movieID uuid.UUID
		if err := rows.Scan(&movieID); err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		movieIDs = append(movieIDs, movieID)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate favorite rows: %w", err)
	}

	return movieIDs, nil
}
