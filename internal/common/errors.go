// Package common defines shared constants and sentinel errors used across
// client and server layers of LifeTracker. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration errors; services attach the colliding field and value.
	ErrorDuplicateEmail    = errors.New("duplicate email")
	ErrorDuplicateUsername = errors.New("duplicate username")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
