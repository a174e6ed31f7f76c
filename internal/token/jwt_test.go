package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/freejob-server/internal/model"
)

func signRaw(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", DefaultLeeway)
	now := time.Now().Truncate(time.Second)
	claims := model.NewAccessTokenClaims(uuid.New(), 30*time.Minute, now)

	token, err := j.Encode(claims)
	require.NoError(t, err)

	got, err := j.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, claims.Subject, got.Subject)
	assert.Equal(t, claims.ID, got.ID)
	assert.Equal(t, model.TokenTypeAccess, got.Type)
	assert.True(t, got.IssuedAt.Equal(now))
	assert.True(t, got.ExpiresAt.Equal(now.Add(30*time.Minute)))
	assert.True(t, got.ExpiresAt.After(got.IssuedAt))
}

func TestJWT_Encode_UnknownType(t *testing.T) {
	j := NewJWT("secret", 0)
	claims := model.NewAccessTokenClaims(uuid.New(), time.Minute, time.Now())
	claims.Type = "refresh"

	_, err := j.Encode(claims)
	require.Error(t, err)
}

func TestJWT_Decode_Expiry(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	j := NewJWT("secret", 30*time.Second)
	token, err := j.Encode(model.NewAccessTokenClaims(uuid.New(), time.Minute, now))
	require.NoError(t, err)

	j.now = func() time.Time { return now.Add(time.Minute + 10*time.Second) }
	_, err = j.Decode(token)
	assert.NoError(t, err, "within leeway")

	j.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = j.Decode(token)
	assert.ErrorIs(t, err, model.ErrInvalidAccessToken)
}

func TestJWT_Decode_Rejects(t *testing.T) {
	j := NewJWT("secret", 0)
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		ID:        uuid.NewString(),
	}

	noExp := valid
	noExp.ExpiresAt = nil
	noSub := valid
	noSub.Subject = ""
	badSub := valid
	badSub.Subject = "alice"

	tests := map[string]string{
		"garbage":        "not.a.token",
		"wrong secret":   signRaw(t, "other", jwt.SigningMethodHS256, Claims{RegisteredClaims: valid, TokenType: "access"}),
		"wrong method":   signRaw(t, "secret", jwt.SigningMethodHS512, Claims{RegisteredClaims: valid, TokenType: "access"}),
		"missing typ":    signRaw(t, "secret", jwt.SigningMethodHS256, Claims{RegisteredClaims: valid}),
		"refresh typ":    signRaw(t, "secret", jwt.SigningMethodHS256, Claims{RegisteredClaims: valid, TokenType: "refresh"}),
		"missing exp":    signRaw(t, "secret", jwt.SigningMethodHS256, Claims{RegisteredClaims: noExp, TokenType: "access"}),
		"missing sub":    signRaw(t, "secret", jwt.SigningMethodHS256, Claims{RegisteredClaims: noSub, TokenType: "access"}),
		"non uuid sub":   signRaw(t, "secret", jwt.SigningMethodHS256, Claims{RegisteredClaims: badSub, TokenType: "access"}),
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: valid, TokenType: "access"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	tests["unsigned token"] = unsigned

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := j.Decode(token)
			assert.ErrorIs(t, err, model.ErrInvalidAccessToken)
		})
	}
}

func TestNewJWT_NegativeLeeway(t *testing.T) {
	j := NewJWT("secret", -time.Second)
	assert.Equal(t, time.Duration(0), j.leeway)
}
