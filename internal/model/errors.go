package model

import "errors"

// Value object construction errors.
var (
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidPasswordHash = errors.New("invalid password hash")
	ErrInvalidUserStatus   = errors.New("invalid user status")
	ErrInvalidOffer        = errors.New("invalid offer description")
)

// Authentication errors.
var (
	// ErrUserLocked is returned when a non-active user tries to authenticate.
	ErrUserLocked = errors.New("user is locked")
	// ErrTokenExpired is returned for refresh tokens that are revoked or past expiry.
	ErrTokenExpired = errors.New("refresh token expired or revoked")
	// ErrUnauthorized is the only authentication failure visible outside the service layer.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidAccessToken is returned by the token codec for any undecodable token.
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrInvalidHash        = errors.New("invalid password hash format")
)

// Storage and business rule errors.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrForbidden      = errors.New("forbidden")
	ErrOfferNotActive = errors.New("offer is not active")
)
