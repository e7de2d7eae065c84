package utils

import (
	"context"
)

type contextKey string

const principalKey contextKey = "principal"

// SetPrincipal attaches the authenticated username to the request context.
func SetPrincipal(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, principalKey, username)
}

// GetPrincipal returns the authenticated username attached by the auth guard.
func GetPrincipal(ctx context.Context) (string, bool) {
	val := ctx.Value(principalKey)
	if val == nil {
		return "", false
	}

	username, ok := val.(string)
	if !ok || username == "" {
		return "", false
	}

	return username, true
}
