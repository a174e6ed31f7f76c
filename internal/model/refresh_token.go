package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RefreshTokenStore defines persistence operations for refresh tokens.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByID(ctx context.Context, id uuid.UUID) (RefreshToken, error)
	// Save updates an existing token, failing with ErrNotFound if it is gone.
	Save(ctx context.Context, token RefreshToken) error
	Delete(ctx context.Context, id uuid.UUID) error
	// RevokeAllByUser revokes every live token of the user and returns how many were revoked.
	RevokeAllByUser(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
}

// RefreshToken is a server-side grant exchanged for access tokens.
// A token is live while RevokedAt is nil and the current time is before ExpiresAt.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// EnsureActive fails with ErrTokenExpired if the token is revoked or expired at the given time.
func (t *RefreshToken) EnsureActive(at time.Time) error {
	if t.RevokedAt != nil || !at.Before(t.ExpiresAt) {
		return ErrTokenExpired
	}

	return nil
}

// Revoke marks the token revoked. Revoking an already revoked token keeps the first timestamp.
func (t *RefreshToken) Revoke(at time.Time) {
	if t.RevokedAt != nil {
		return
	}
	t.RevokedAt = &at
}
