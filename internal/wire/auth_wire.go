package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Login is public; it is where tokens come from
	r.Post("/login", authHandler.Login)
}
