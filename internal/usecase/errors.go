package usecase

import (
	"errors"

	"movie-catalog/pkg/utils"
)

var (
	// ErrNotFound signals that the addressed user or movie does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken signals a registration or rename conflict.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidMovieID signals a malformed movie identifier in the URL.
	ErrInvalidMovieID = errors.New("invalid movie id")
)

// ValidationError carries every violated field rule, in declaration order,
// so a client can fix all fields in one round-trip.
type ValidationError struct {
	Violations []utils.FieldViolation
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatViolations(e.Violations)
}
