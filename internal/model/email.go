package model

import (
	"regexp"
	"strings"
)

// Whitespace here covers ASCII, vertical tab and Unicode separators.
var emailPattern = regexp.MustCompile(`^[^@\s\v\p{Z}]+@[^@\s\v\p{Z}]+\.[^@\s\v\p{Z}]+$`)

// Email is a trimmed lower-case email address.
type Email string

// NewEmail normalizes raw and validates its shape.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if !emailPattern.MatchString(normalized) {
		return "", ErrInvalidEmail
	}

	return Email(normalized), nil
}

func (e Email) String() string {
	return string(e)
}
