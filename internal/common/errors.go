// Package common defines shared constants and sentinel errors used across
// client and server layers of userdir. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound         = errors.New("not found")
	ErrorLoginAlreadyUsed = errors.New("login already used")

	// Service-level errors.
	ErrorUnexpected    = errors.New("unexpected error")
	ErrorWrongPassword = errors.New("wrong password")
	ErrorUnauthorized  = errors.New("unauthorized")

	// Validation errors.
	ErrorInvalidLoginFormat    = errors.New("invalid login format")
	ErrorInvalidPasswordFormat = errors.New("invalid password format")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Startup errors.
	ErrorMissingSecret = errors.New("signing secret is not configured")
)
