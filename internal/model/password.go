package model

import "unicode/utf8"

const minPasswordHashLength = 20

// PasswordHash is an opaque hash produced by a PasswordHasher.
type PasswordHash string

// NewPasswordHash wraps value, rejecting empty or implausibly short hashes.
// It does not check that value is a well-formed hash.
func NewPasswordHash(value string) (PasswordHash, error) {
	if utf8.RuneCountInString(value) < minPasswordHashLength {
		return "", ErrInvalidPasswordHash
	}

	return PasswordHash(value), nil
}

func (h PasswordHash) String() string {
	return string(h)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// errors are reserved for malformed hashes.
	Verify(password, hash string) (bool, error)
}
