package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAccessTokenClaims(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	a := NewAccessTokenClaims(userID, 30*time.Minute, now)
	b := NewAccessTokenClaims(userID, 30*time.Minute, now)

	assert.Equal(t, userID, a.Subject)
	assert.Equal(t, TokenTypeAccess, a.Type)
	assert.Equal(t, now.Add(30*time.Minute), a.ExpiresAt)
	assert.True(t, a.ExpiresAt.After(a.IssuedAt))
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTokenType_Valid(t *testing.T) {
	assert.True(t, TokenTypeAccess.Valid())
	assert.False(t, TokenType("refresh").Valid())
	assert.False(t, TokenType("").Valid())
}
