package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	favRepo  repository.FavoriteRepository
	tokens   *token.Manager
	log      *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) AuthService {
	return &authService{
		userRepo: repo.User,
		favRepo:  repo.Favorite,
		tokens:   tokens,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		s.log.Warn("Login validation failed", zap.Any("violations", violations))
		return nil, &ValidationError{Violations: violations}
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	signed, expiresAt, err := s.tokens.Generate(user.Username)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	favorites, err := s.favRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.AuthResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      response.UserToResponse(user, favorites),
	}, nil
}
