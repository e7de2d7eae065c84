package middleware

import (
	"net/http"

	"movie-catalog/pkg/token"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Auth guards protected routes. It verifies the bearer token, attaches the
// authenticated username to the request context, and rejects with 401
// before the handler runs otherwise. Every request is verified
// independently; no session state is kept between requests.
func Auth(tokens *token.Manager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := token.FromRequest(r)
			if err != nil {
				utils.ResponseUnauthorized(w, err.Error())
				return
			}

			username, err := tokens.Verify(tokenString)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetPrincipal(r.Context(), username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
