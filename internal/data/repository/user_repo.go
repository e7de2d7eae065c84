package repository

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// Update rewrites the addressed user and reports whether a record existed.
	Update(ctx context.Context, user *entity.User) (bool, error)
	// Delete removes the addressed user and reports whether a record existed.
	Delete(ctx context.Context, username string) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password, birthday, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Birthday,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, email, password, birthday, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Birthday,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, username, email, password, birthday, created_at, updated_at
		FROM users
		ORDER BY username
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to find all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Birthday,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) (bool, error) {
	query := `
		UPDATE users
		SET username = $2, email = $3, password = $4, birthday = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Birthday,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return false, fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	// The row may have been deleted between the lookup and this write
	return result.RowsAffected() > 0, nil
}

func (ur *userRepository) Delete(ctx context.Context, username string) (bool, error) {
	query := `DELETE FROM users WHERE username = $1`

	result, err := ur.db.Exec(ctx, query, username)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("username", username),
		)
		return false, fmt.Errorf("delete user %s: %w", username, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	ur.log.Info("User deleted", zap.String("username", username))
	return true, nil
}
