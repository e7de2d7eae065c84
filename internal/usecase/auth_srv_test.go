package usecase

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/dto/request"
	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (AuthService, *token.Manager) {
	t.Helper()

	users := newFakeUserRepo()
	user := seedUser(users, "MovieFan1")

	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	user.PasswordHash = hash

	manager := token.NewManager("test-secret", time.Hour)
	svc := NewAuthService(newTestRepository(users, newFakeFavoriteRepo()), manager, zap.NewNop())
	return svc, manager
}

func TestLogin(t *testing.T) {
	svc, manager := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "MovieFan1",
		Password: "hunter2",
	})
	require.NoError(t, err)

	assert.Equal(t, "MovieFan1", resp.User.Username)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// Issued token verifies back to the same principal
	username, err := manager.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "MovieFan1", username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "MovieFan1",
		Password: "hunter3",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody1",
		Password: "hunter2",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &request.LoginRequest{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)
}
