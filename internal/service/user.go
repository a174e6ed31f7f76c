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

// User exposes user profiles and account administration.
type User struct {
	users  model.UserStore
	tokens *TokenService
	now    func() time.Time
	logger *logger.Logger
}

// NewUser creates new User service instance.
func NewUser(users model.UserStore, tokens *TokenService, logger *logger.Logger) *User {
	return &User{
		users:  users,
		tokens: tokens,
		now:    utcNow,
		logger: logger,
	}
}

// GetUser returns the user with id.
func (s *User) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns a page of users ordered by registration time.
func (s *User) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	limit, offset = normalizePage(limit, offset)

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Lock locks the account registered with email and revokes all its refresh tokens.
// Access tokens already issued stop working at the next authenticated request.
func (s *User) Lock(ctx context.Context, rawEmail string) (int64, error) {
	email, err := model.NewEmail(rawEmail)
	if err != nil {
		return 0, err
	}

	view, err := s.users.GetAuthView(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return 0, model.ErrNotFound
		}
		return 0, fmt.Errorf("failed to get user by email: %w", err)
	}

	user, err := s.users.GetByID(ctx, view.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	user.Lock()
	user.UpdatedAt = s.now()

	if err := s.users.Save(ctx, user); err != nil {
		return 0, fmt.Errorf("failed to save user: %w", err)
	}

	// The lock is already stored; running Lock again retries the revocation.
	revoked, err := s.tokens.LogoutAll(ctx, user.ID)
	if err != nil {
		s.logger.Error("User service: user locked but refresh tokens not revoked",
			"user_id", user.ID.String(),
			"error", err.Error())
		return 0, fmt.Errorf("user locked, failed to revoke sessions: %w", err)
	}

	s.logger.Info("User service: user locked",
		"user_id", user.ID.String(),
		"revoked_tokens", revoked)

	return revoked, nil
}
