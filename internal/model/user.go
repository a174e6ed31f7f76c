package model

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	// Create fails with ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// GetAuthView loads only the fields needed to verify credentials.
	GetAuthView(ctx context.Context, email Email) (UserAuthView, error)
	// Save updates an existing user, failing with ErrNotFound if it is gone.
	Save(ctx context.Context, user User) error
	// ExistsByEmail is advisory. Create is the authoritative uniqueness check.
	ExistsByEmail(ctx context.Context, email Email) (bool, error)
	List(ctx context.Context, limit, offset int) ([]User, error)
}

// UserStatus is the account state of a user.
type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusLocked UserStatus = "locked"
)

// ParseUserStatus converts a stored status string into a UserStatus.
func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case UserStatusActive:
		return UserStatusActive, nil
	case UserStatusLocked:
		return UserStatusLocked, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUserStatus, s)
	}
}

// UserAuthView is the minimal projection of a user used for login.
type UserAuthView struct {
	ID           uuid.UUID
	PasswordHash PasswordHash
	Status       UserStatus
}

// UserProfile holds the profile fields of a user.
type UserProfile struct {
	Name     string
	LastName string
	Phone    *string
	Roles    []string
	Skills   []string
	Ratings  []float64
}

// Registration is the unvalidated input of a sign-up.
type Registration struct {
	Email    string
	Password string
	Profile  UserProfile
}

// User is the user aggregate. It owns the rule of who may authenticate.
type User struct {
	ID           uuid.UUID
	Email        Email
	PasswordHash PasswordHash
	UserProfile
	Status       UserStatus
	Applications []uuid.UUID
	Offers       []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates an active user.
func NewUser(id uuid.UUID, email Email, hash PasswordHash, profile UserProfile, now time.Time) User {
	return User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		UserProfile:  profile,
		Status:       UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// EnsureCanAuthenticate fails with ErrUserLocked unless the user is active.
func (u *User) EnsureCanAuthenticate() error {
	return u.Status.ensureCanAuthenticate()
}

func (s UserStatus) ensureCanAuthenticate() error {
	switch s {
	case UserStatusActive:
		return nil
	case UserStatusLocked:
		return ErrUserLocked
	default:
		return ErrUserLocked
	}
}

// EnsureCanAuthenticate applies the same rule as User.EnsureCanAuthenticate to an auth view.
func (v UserAuthView) EnsureCanAuthenticate() error {
	return v.Status.ensureCanAuthenticate()
}

// IssueRefreshToken mints a refresh token for the user. The token is not persisted.
func (u *User) IssueRefreshToken(id uuid.UUID, ttl time.Duration, now time.Time) (RefreshToken, error) {
	if err := u.EnsureCanAuthenticate(); err != nil {
		return RefreshToken{}, err
	}

	return RefreshToken{
		ID:        id,
		UserID:    u.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IssueOffer creates an active offer owned by the user.
func (u *User) IssueOffer(id uuid.UUID, description OfferDescription, now time.Time) Offer {
	return Offer{
		ID:          id,
		UserID:      u.ID,
		Description: description,
		Status:      OfferStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (u *User) ChangePassword(hash PasswordHash) {
	u.PasswordHash = hash
}

func (u *User) ChangeEmail(email Email) {
	u.Email = email
}

func (u *User) ChangeRoles(roles []string) {
	u.Roles = roles
}

func (u *User) ChangeSkills(skills []string) {
	u.Skills = skills
}

func (u *User) ChangeRatings(ratings []float64) {
	u.Ratings = ratings
}

// Applied records an application to offerID.
func (u *User) Applied(offerID uuid.UUID) {
	u.Applications = append(u.Applications, offerID)
}

// Offered records an offer posted by the user.
func (u *User) Offered(offerID uuid.UUID) {
	u.Offers = append(u.Offers, offerID)
}

// Lock prevents the user from authenticating.
func (u *User) Lock() {
	u.Status = UserStatusLocked
}
