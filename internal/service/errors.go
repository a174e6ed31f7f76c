package service

import (
	"errors"
	"fmt"

	"github.com/dtroode/freejob-server/internal/model"
)

// isAuthFailure reports whether err means the caller failed to authenticate.
func isAuthFailure(err error) bool {
	switch {
	case errors.Is(err, model.ErrUnauthorized),
		errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrUserLocked),
		errors.Is(err, model.ErrInvalidEmail),
		errors.Is(err, model.ErrInvalidAccessToken):
		return true
	default:
		return false
	}
}

// authBoundary is applied to every error leaving an authentication use case.
// Authentication failures become ErrUnauthorized. Anything else is wrapped with op.
func authBoundary(op string, err error) error {
	if isAuthFailure(err) {
		return model.ErrUnauthorized
	}
	return fmt.Errorf("%s: %w", op, err)
}
