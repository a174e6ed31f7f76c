package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) User {
	t.Helper()

	email, err := NewEmail("alice@example.com")
	require.NoError(t, err)
	hash, err := NewPasswordHash("$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	require.NoError(t, err)

	return NewUser(uuid.New(), email, hash, UserProfile{Name: "Alice", LastName: "Smith"}, time.Now())
}

func TestParseUserStatus(t *testing.T) {
	s, err := ParseUserStatus("active")
	require.NoError(t, err)
	assert.Equal(t, UserStatusActive, s)

	s, err = ParseUserStatus("locked")
	require.NoError(t, err)
	assert.Equal(t, UserStatusLocked, s)

	_, err = ParseUserStatus("ACTIVE")
	require.ErrorIs(t, err, ErrInvalidUserStatus)
}

func TestNewUser_IsActive(t *testing.T) {
	u := newTestUser(t)

	assert.Equal(t, UserStatusActive, u.Status)
	assert.NoError(t, u.EnsureCanAuthenticate())
	assert.Empty(t, u.Applications)
	assert.Empty(t, u.Offers)
}

func TestUser_Lock(t *testing.T) {
	u := newTestUser(t)
	u.Lock()

	assert.Equal(t, UserStatusLocked, u.Status)
	assert.ErrorIs(t, u.EnsureCanAuthenticate(), ErrUserLocked)

	u.Lock()
	assert.Equal(t, UserStatusLocked, u.Status)
}

func TestUser_IssueRefreshToken(t *testing.T) {
	u := newTestUser(t)
	id := uuid.New()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	rt, err := u.IssueRefreshToken(id, 7*24*time.Hour, now)
	require.NoError(t, err)

	assert.Equal(t, id, rt.ID)
	assert.Equal(t, u.ID, rt.UserID)
	assert.Equal(t, now, rt.IssuedAt)
	assert.Equal(t, now.Add(7*24*time.Hour), rt.ExpiresAt)
	assert.Nil(t, rt.RevokedAt)
}

func TestUser_IssueRefreshToken_Locked(t *testing.T) {
	u := newTestUser(t)
	u.Lock()

	_, err := u.IssueRefreshToken(uuid.New(), time.Hour, time.Now())
	require.ErrorIs(t, err, ErrUserLocked)
}

func TestUserAuthView_EnsureCanAuthenticate(t *testing.T) {
	assert.NoError(t, UserAuthView{Status: UserStatusActive}.EnsureCanAuthenticate())
	assert.ErrorIs(t, UserAuthView{Status: UserStatusLocked}.EnsureCanAuthenticate(), ErrUserLocked)
	assert.ErrorIs(t, UserAuthView{}.EnsureCanAuthenticate(), ErrUserLocked)
}

func TestUser_Mutations(t *testing.T) {
	u := newTestUser(t)

	newEmail, err := NewEmail("new@example.com")
	require.NoError(t, err)
	newHash, err := NewPasswordHash("another-hash-value-long-enough")
	require.NoError(t, err)

	u.ChangeEmail(newEmail)
	u.ChangePassword(newHash)
	u.ChangeRoles([]string{"developer"})
	u.ChangeSkills([]string{"go", "sql"})
	u.ChangeRatings([]float64{4.5})

	offerID := uuid.New()
	u.Applied(offerID)
	u.Offered(offerID)

	assert.Equal(t, newEmail, u.Email)
	assert.Equal(t, newHash, u.PasswordHash)
	assert.Equal(t, []string{"developer"}, u.Roles)
	assert.Equal(t, []string{"go", "sql"}, u.Skills)
	assert.Equal(t, []float64{4.5}, u.Ratings)
	assert.Equal(t, []uuid.UUID{offerID}, u.Applications)
	assert.Equal(t, []uuid.UUID{offerID}, u.Offers)
	assert.NoError(t, u.EnsureCanAuthenticate())
}

func TestUser_IssueOffer(t *testing.T) {
	u := newTestUser(t)
	id := uuid.New()
	now := time.Now()

	o := u.IssueOffer(id, OfferDescription{Title: "Go developer"}, now)

	assert.Equal(t, id, o.ID)
	assert.Equal(t, u.ID, o.UserID)
	assert.Equal(t, OfferStatusActive, o.Status)
	assert.Equal(t, now, o.CreatedAt)
}
