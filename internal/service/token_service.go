package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/freejob-server/internal/logger"
	"github.com/dtroode/freejob-server/internal/model"
)

const (
	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenConfig holds token lifetimes. Zero values fall back to the defaults.
type TokenConfig struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// TokenService issues, refreshes and revokes sessions.
// Refresh tokens are not rotated: Refresh keeps the presented token valid.
type TokenService struct {
	manager    model.TokenManager
	store      model.RefreshTokenStore
	users      model.UserStore
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

// NewTokenService creates new TokenService instance.
func NewTokenService(
	manager model.TokenManager,
	store model.RefreshTokenStore,
	users model.UserStore,
	cfg TokenConfig,
	logger *logger.Logger,
) *TokenService {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}

	return &TokenService{
		manager:    manager,
		store:      store,
		users:      users,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        utcNow,
		logger:     logger,
	}
}

// Issue persists a new refresh token for user and signs an access token.
// It fails with ErrUserLocked if the user may not authenticate.
func (s *TokenService) Issue(ctx context.Context, user *model.User) (model.Session, error) {
	now := s.now()

	refreshToken, err := user.IssueRefreshToken(uuid.New(), s.refreshTTL, now)
	if err != nil {
		return model.Session{}, err
	}

	if err := s.store.Create(ctx, refreshToken); err != nil {
		s.logger.Error("Token service: failed to store refresh token",
			"user_id", user.ID.String(),
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	accessToken, err := s.encodeAccessToken(user.ID, now)
	if err != nil {
		return model.Session{}, err
	}

	s.logger.Debug("Token service: session issued",
		"user_id", user.ID.String(),
		"refresh_token_id", refreshToken.ID.String())

	return model.Session{
		UserID:         user.ID,
		AccessToken:    accessToken,
		RefreshTokenID: refreshToken.ID,
	}, nil
}

// Refresh signs a new access token for an active refresh token.
// Any problem with the presented token yields ErrUnauthorized.
func (s *TokenService) Refresh(ctx context.Context, refreshTokenID string) (model.Session, error) {
	id, err := uuid.Parse(refreshTokenID)
	if err != nil {
		return model.Session{}, model.ErrUnauthorized
	}

	refreshToken, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Session{}, authBoundary("failed to get refresh token", err)
	}

	now := s.now()
	if err := refreshToken.EnsureActive(now); err != nil {
		s.logger.Debug("Token service: refresh with inactive token",
			"refresh_token_id", id.String())
		return model.Session{}, model.ErrUnauthorized
	}

	accessToken, err := s.encodeAccessToken(refreshToken.UserID, now)
	if err != nil {
		return model.Session{}, err
	}

	return model.Session{
		UserID:         refreshToken.UserID,
		AccessToken:    accessToken,
		RefreshTokenID: refreshToken.ID,
	}, nil
}

// Logout revokes a refresh token. Revoking an already revoked token succeeds.
func (s *TokenService) Logout(ctx context.Context, refreshTokenID string) error {
	id, err := uuid.Parse(refreshTokenID)
	if err != nil {
		return model.ErrUnauthorized
	}

	refreshToken, err := s.store.GetByID(ctx, id)
	if err != nil {
		return authBoundary("failed to get refresh token", err)
	}

	refreshToken.Revoke(s.now())

	if err := s.store.Save(ctx, refreshToken); err != nil {
		return authBoundary("failed to save refresh token", err)
	}

	s.logger.Info("Token service: refresh token revoked",
		"user_id", refreshToken.UserID.String(),
		"refresh_token_id", id.String())

	return nil
}

// LogoutAll revokes every live refresh token of userID and returns how many were revoked.
func (s *TokenService) LogoutAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	revoked, err := s.store.RevokeAllByUser(ctx, userID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	s.logger.Info("Token service: refresh tokens revoked",
		"user_id", userID.String(),
		"count", revoked)

	return revoked, nil
}

// Authenticate resolves the user behind an access token.
// A locked user yields ErrUserLocked, every other failure ErrUnauthorized.
func (s *TokenService) Authenticate(ctx context.Context, accessToken string) (uuid.UUID, error) {
	claims, err := s.manager.Decode(accessToken)
	if err != nil {
		s.logger.Debug("Token service: invalid access token",
			"error", err.Error())
		return uuid.Nil, model.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return uuid.Nil, authBoundary("failed to get user", err)
	}

	if err := user.EnsureCanAuthenticate(); err != nil {
		if errors.Is(err, model.ErrUserLocked) {
			return uuid.Nil, model.ErrUserLocked
		}
		return uuid.Nil, model.ErrUnauthorized
	}

	return user.ID, nil
}

func (s *TokenService) encodeAccessToken(userID uuid.UUID, now time.Time) (string, error) {
	accessToken, err := s.manager.Encode(model.NewAccessTokenClaims(userID, s.accessTTL, now))
	if err != nil {
		s.logger.Error("Token service: failed to sign access token",
			"user_id", userID.String(),
			"error", err.Error())
		return "", fmt.Errorf("failed to encode access token: %w", err)
	}
	return accessToken, nil
}
