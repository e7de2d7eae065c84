package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	login func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	return f.login(ctx, req)
}

func TestLoginHandler(t *testing.T) {
	svc := &fakeAuthService{
		login: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return &response.AuthResponse{
				Token:     "signed.jwt.token",
				ExpiresAt: time.Now().Add(time.Hour),
				User:      response.UserResponse{Username: req.Username, FavoriteMovies: []string{}},
			}, nil
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	body, _ := json.Marshal(map[string]string{"username": "MovieFan1", "password": "hunter2"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "signed.jwt.token")
	assert.NotContains(t, rr.Body.String(), "hunter2")
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	svc := &fakeAuthService{
		login: func(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc, zap.NewNop())

	body, _ := json.Marshal(map[string]string{"username": "MovieFan1", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginHandlerInvalidJSON(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{")))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
