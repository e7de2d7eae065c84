package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUser(ctx context.Context, username string) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, username string) error
}

type userService struct {
	userRepo repository.UserRepository
	favRepo  repository.FavoriteRepository
	log      *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		userRepo: repo.User,
		favRepo:  repo.Favorite,
		log:      log,
	}
}

func (us *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// Run every field rule and report all violations at once
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		us.log.Warn("Register validation failed", zap.Any("violations", violations))
		return nil, &ValidationError{Violations: violations}
	}

	existing, err := us.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		us.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Birthday:     parseBirthday(req.Birthday),
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		us.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user, nil)
	return &resp, nil
}

func (us *userService) GetAllUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		us.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("get all users: %w", err)
	}

	responses := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		favorites, err := us.favRepo.ListByUser(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("list favorites: %w", err)
		}
		responses = append(responses, response.UserToResponse(user, favorites))
	}

	return responses, nil
}

func (us *userService) GetUser(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByUsername(ctx, username)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	favorites, err := us.favRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	resp := response.UserToResponse(user, favorites)
	return &resp, nil
}

func (us *userService) UpdateUser(ctx context.Context, username string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		us.log.Warn("Update validation failed", zap.Any("violations", violations))
		return nil, &ValidationError{Violations: violations}
	}

	user, err := us.userRepo.FindByUsername(ctx, username)
	if err != nil {
		us.log.Error("Failed to find user for update", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	// Renaming must not collide with an existing account
	if req.Username != user.Username {
		existing, err := us.userRepo.FindByUsername(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("check username: %w", err)
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
	}

	user.Username = req.Username
	user.Email = req.Email
	user.Birthday = parseBirthday(req.Birthday)
	user.UpdatedAt = time.Now()

	// Keep the stored hash when no new password is supplied
	if req.Password != "" {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	updated, err := us.userRepo.Update(ctx, user)
	if err != nil {
		us.log.Error("Failed to update user", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("update user: %w", err)
	}
	if !updated {
		// Deleted between the lookup and the write
		return nil, ErrNotFound
	}

	favorites, err := us.favRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	us.log.Info("User updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user, favorites)
	return &resp, nil
}

func (us *userService) DeleteUser(ctx context.Context, username string) error {
	deleted, err := us.userRepo.Delete(ctx, username)
	if err != nil {
		us.log.Error("Failed to delete user", zap.Error(err), zap.String("username", username))
		return fmt.Errorf("delete user: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

// parseBirthday converts an optional validated YYYY-MM-DD string.
func parseBirthday(value string) *time.Time {
	if value == "" {
		return nil
	}
	birthday, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &birthday
}
