package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFavoriteService struct {
	add    func(ctx context.Context, username, movieID string) (*response.UserResponse, error)
	remove func(ctx context.Context, username, movieID string) (*response.UserResponse, error)
	list   func(ctx context.Context, username string) ([]string, error)
}

func (f *fakeFavoriteService) AddFavorite(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
	return f.add(ctx, username, movieID)
}

func (f *fakeFavoriteService) RemoveFavorite(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
	return f.remove(ctx, username, movieID)
}

func (f *fakeFavoriteService) ListFavorites(ctx context.Context, username string) ([]string, error) {
	return f.list(ctx, username)
}

func favoriteRouter(svc usecase.FavoriteService) *chi.Mux {
	h := NewFavoriteHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/users/favorites/{username}", h.ListFavorites)
	r.Post("/users/{username}/favoriteMovies/{movieID}", h.AddFavorite)
	r.Delete("/users/{username}/favoriteMovies/{movieID}", h.RemoveFavorite)
	return r
}

const testMovieID = "0b91f3a0-9c1d-4a57-8f51-2d3b6f1f7c21"

func TestAddFavoriteHandler(t *testing.T) {
	svc := &fakeFavoriteService{
		add: func(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
			assert.Equal(t, "MovieFan1", username)
			assert.Equal(t, testMovieID, movieID)
			return &response.UserResponse{
				Username:       username,
				FavoriteMovies: []string{movieID},
			}, nil
		},
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/users/MovieFan1/favoriteMovies/"+testMovieID, nil), "MovieFan1")
	rr := httptest.NewRecorder()

	favoriteRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), testMovieID)
}

func TestAddFavoriteHandlerUnknownUser(t *testing.T) {
	svc := &fakeFavoriteService{
		add: func(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
			return nil, usecase.ErrNotFound
		},
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/users/nobody/favoriteMovies/"+testMovieID, nil), "nobody")
	rr := httptest.NewRecorder()

	favoriteRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAddFavoriteHandlerInvalidMovieID(t *testing.T) {
	svc := &fakeFavoriteService{
		add: func(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
			return nil, usecase.ErrInvalidMovieID
		},
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/users/MovieFan1/favoriteMovies/abc123", nil), "MovieFan1")
	rr := httptest.NewRecorder()

	favoriteRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRemoveFavoriteHandler(t *testing.T) {
	svc := &fakeFavoriteService{
		remove: func(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
			return &response.UserResponse{
				Username:       username,
				FavoriteMovies: []string{},
			}, nil
		},
	}

	req := asUser(httptest.NewRequest(http.MethodDelete, "/users/MovieFan1/favoriteMovies/"+testMovieID, nil), "MovieFan1")
	rr := httptest.NewRecorder()

	favoriteRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), testMovieID)
}

func TestFavoriteMutationsRejectForeignPrincipal(t *testing.T) {
	svc := &fakeFavoriteService{
		add: func(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
			t.Fatal("service must not be called for a foreign principal")
			return nil, nil
		},
		remove: func(ctx context.Context, username, movieID string) (*response.UserResponse, error) {
			t.Fatal("service must not be called for a foreign principal")
			return nil, nil
		},
	}

	requests := []*http.Request{
		asUser(httptest.NewRequest(http.MethodPost, "/users/MovieFan1/favoriteMovies/"+testMovieID, nil), "SomeoneElse"),
		asUser(httptest.NewRequest(http.MethodDelete, "/users/MovieFan1/favoriteMovies/"+testMovieID, nil), "SomeoneElse"),
	}

	for _, req := range requests {
		rr := httptest.NewRecorder()
		favoriteRouter(svc).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	}
}

func TestListFavoritesHandler(t *testing.T) {
	svc := &fakeFavoriteService{
		list: func(ctx context.Context, username string) ([]string, error) {
			return []string{testMovieID}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/users/favorites/MovieFan1", nil)
	rr := httptest.NewRecorder()

	favoriteRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, []string{testMovieID}, resp.Data)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
}
