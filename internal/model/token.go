package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenType discriminates signed token kinds.
type TokenType string

// TokenTypeAccess is the only token type issued today.
const TokenTypeAccess TokenType = "access"

// Valid reports whether t is a known token type.
func (t TokenType) Valid() bool {
	switch t {
	case TokenTypeAccess:
		return true
	default:
		return false
	}
}

// AccessTokenClaims is the claim set of a short-lived access token. It is never persisted.
type AccessTokenClaims struct {
	Subject   uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
	Type      TokenType
}

// NewAccessTokenClaims builds access claims for userID with a fresh jti.
func NewAccessTokenClaims(userID uuid.UUID, ttl time.Duration, now time.Time) AccessTokenClaims {
	return AccessTokenClaims{
		Subject:   userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		ID:        uuid.NewString(),
		Type:      TokenTypeAccess,
	}
}

// TokenManager encodes and decodes signed access tokens.
type TokenManager interface {
	Encode(claims AccessTokenClaims) (string, error)
	// Decode verifies the signature, expiry and type of token.
	Decode(token string) (AccessTokenClaims, error)
}

// Session is returned by a successful login or refresh.
type Session struct {
	UserID         uuid.UUID
	AccessToken    string
	RefreshTokenID uuid.UUID
}
