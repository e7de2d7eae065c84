package response

import (
	"time"

	"movie-catalog/internal/data/entity"

	"github.com/google/uuid"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Birthday       *string   `json:"birthday,omitempty"`
	FavoriteMovies []string  `json:"favorite_movies"`
	CreatedAt      time.Time `json:"created_at"`
}

func UserToResponse(user *entity.User, favorites []uuid.UUID) UserResponse {
	resp := UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		Email:          user.Email,
		FavoriteMovies: make([]string, 0, len(favorites)),
		CreatedAt:      user.CreatedAt,
	}

	if user.Birthday != nil {
		birthday := user.Birthday.Format("2006-01-02")
		resp.Birthday = &birthday
	}

	for _, movieID := range favorites {
		resp.FavoriteMovies = append(resp.FavoriteMovies, movieID.String())
	}

	return resp
}
