package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_EnsureActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	revokedAt := now.Add(-time.Minute)

	tests := []struct {
		name    string
		token   RefreshToken
		at      time.Time
		wantErr bool
	}{
		{
			name:  "live",
			token: RefreshToken{ExpiresAt: now.Add(time.Hour)},
			at:    now,
		},
		{
			name:    "exactly at expiry",
			token:   RefreshToken{ExpiresAt: now},
			at:      now,
			wantErr: true,
		},
		{
			name:    "expired",
			token:   RefreshToken{ExpiresAt: now.Add(-time.Hour)},
			at:      now,
			wantErr: true,
		},
		{
			name:    "expired and revoked",
			token:   RefreshToken{ExpiresAt: now.Add(-time.Hour), RevokedAt: &revokedAt},
			at:      now,
			wantErr: true,
		},
		{
			name:    "revoked before expiry",
			token:   RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revokedAt},
			at:      now,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.token.EnsureActive(tt.at)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTokenExpired)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRefreshToken_Revoke_Idempotent(t *testing.T) {
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rt := RefreshToken{ID: uuid.New(), ExpiresAt: first.Add(time.Hour)}

	rt.Revoke(first)
	rt.Revoke(first.Add(time.Minute))

	if assert.NotNil(t, rt.RevokedAt) {
		assert.Equal(t, first, *rt.RevokedAt)
	}
	assert.ErrorIs(t, rt.EnsureActive(first), ErrTokenExpired)
}
