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

// dummyPassword is hashed once so that logins for unknown emails still pay for a verification.
const dummyPassword = "freejob-dummy-password"

// Auth handles registration and login.
type Auth struct {
	users     model.UserStore
	hasher    model.PasswordHasher
	tokens    *TokenService
	dummyHash string
	now       func() time.Time
	logger    *logger.Logger
}

// NewAuth creates new Auth service instance.
func NewAuth(
	users model.UserStore,
	hasher model.PasswordHasher,
	tokens *TokenService,
	logger *logger.Logger,
) (*Auth, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash dummy password: %w", err)
	}

	return &Auth{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
		now:       utcNow,
		logger:    logger,
	}, nil
}

// Register creates an active user. A taken email yields ErrAlreadyExists.
func (a *Auth) Register(ctx context.Context, params model.Registration) (model.User, error) {
	email, err := model.NewEmail(params.Email)
	if err != nil {
		return model.User{}, err
	}

	a.logger.Debug("Auth service: starting user registration",
		"email", email.String())

	encoded, err := a.hasher.Hash(params.Password)
	if err != nil {
		if errors.Is(err, model.ErrEmptyPassword) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hash, err := model.NewPasswordHash(encoded)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to build password hash: %w", err)
	}

	user := model.NewUser(uuid.New(), email, hash, params.Profile, a.now())

	if err := a.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			a.logger.Info("Auth service: email already registered",
				"email", email.String())
			return model.User{}, model.ErrAlreadyExists
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email.String(),
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"email", email.String(),
		"user_id", user.ID.String())

	return user, nil
}

// Login checks credentials and issues a session.
// Unknown email, locked user and wrong password all yield ErrUnauthorized.
func (a *Auth) Login(ctx context.Context, rawEmail, password string) (model.Session, error) {
	email, err := model.NewEmail(rawEmail)
	if err != nil {
		a.burnVerify(password)
		return model.Session{}, model.ErrUnauthorized
	}

	view, err := a.users.GetAuthView(ctx, email)
	if err != nil {
		a.burnVerify(password)
		return model.Session{}, authBoundary("failed to get user by email", err)
	}

	if err := view.EnsureCanAuthenticate(); err != nil {
		a.burnVerify(password)
		a.logger.Info("Auth service: login attempt for locked user",
			"user_id", view.ID.String())
		return model.Session{}, model.ErrUnauthorized
	}

	ok, err := a.hasher.Verify(password, view.PasswordHash.String())
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", view.ID.String(),
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: wrong password",
			"user_id", view.ID.String())
		return model.Session{}, model.ErrUnauthorized
	}

	user, err := a.users.GetByID(ctx, view.ID)
	if err != nil {
		return model.Session{}, authBoundary("failed to get user", err)
	}

	session, err := a.tokens.Issue(ctx, &user)
	if err != nil {
		return model.Session{}, authBoundary("failed to issue session", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID.String())

	return session, nil
}

// EmailAvailable reports whether no user is registered with email.
// The answer is advisory: Register still fails with ErrAlreadyExists on a race.
func (a *Auth) EmailAvailable(ctx context.Context, rawEmail string) (bool, error) {
	email, err := model.NewEmail(rawEmail)
	if err != nil {
		return false, err
	}

	exists, err := a.users.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return !exists, nil
}

func (a *Auth) burnVerify(password string) {
	_, _ = a.hasher.Verify(password, a.dummyHash)
}
