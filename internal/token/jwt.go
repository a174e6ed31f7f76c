package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/model"
)

// DefaultLeeway is the clock skew tolerated when checking exp.
const DefaultLeeway = 30 * time.Second

// Claims is the signed representation of model.AccessTokenClaims.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

var _ model.TokenManager = (*JWT)(nil)

// JWT implements TokenManager with HS256 signed tokens.
type JWT struct {
	secretKey []byte
	leeway    time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT codec. A negative leeway is treated as zero.
func NewJWT(secretKey string, leeway time.Duration) *JWT {
	if leeway < 0 {
		leeway = 0
	}
	return &JWT{secretKey: []byte(secretKey), leeway: leeway, now: time.Now}
}

// Encode signs claims.
func (j *JWT) Encode(claims model.AccessTokenClaims) (string, error) {
	if !claims.Type.Valid() {
		return "", fmt.Errorf("unknown token type %q", claims.Type)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject.String(),
			ID:        claims.ID,
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
		TokenType: string(claims.Type),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Decode verifies tokenString and returns its claims. Any failure wraps ErrInvalidAccessToken.
func (j *JWT) Decode(tokenString string) (model.AccessTokenClaims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(j.leeway),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.AccessTokenClaims{}, fmt.Errorf("%w: %v", model.ErrInvalidAccessToken, err)
	}

	if claims.Subject == "" {
		return model.AccessTokenClaims{}, fmt.Errorf("%w: missing sub", model.ErrInvalidAccessToken)
	}
	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.AccessTokenClaims{}, fmt.Errorf("%w: bad sub: %v", model.ErrInvalidAccessToken, err)
	}

	switch tt := model.TokenType(claims.TokenType); tt {
	case model.TokenTypeAccess:
	case "":
		return model.AccessTokenClaims{}, fmt.Errorf("%w: missing typ", model.ErrInvalidAccessToken)
	default:
		return model.AccessTokenClaims{}, fmt.Errorf("%w: token type mismatch: %s", model.ErrInvalidAccessToken, tt)
	}

	out := model.AccessTokenClaims{
		Subject:   subject,
		ID:        claims.ID,
		Type:      model.TokenTypeAccess,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}
