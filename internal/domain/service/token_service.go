package service

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong algorithm, expired, malformed or without a subject.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies signed access tokens.
// The signing secret and algorithm are fixed for the lifetime of the process.
type TokenService interface {
	// Issue creates a token whose subject is the given string.
	// A ttl of zero or less uses the configured default.
	Issue(subject string, ttl time.Duration) (string, error)

	// Verify returns the subject of a valid token, or ErrInvalidToken.
	Verify(token string) (string, error)

	// TTL returns the configured default lifetime.
	TTL() time.Duration
}
