// Package common contains shared constants and sentinel errors used across
// userdir components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the session
// token on protected calls.
const AccessTokenHeaderName = "access_token"

// TokenCookieName is the HTTP cookie that carries the session token.
const TokenCookieName = "jwt"

// SaltLength is the number of characters in a freshly generated credential salt.
const SaltLength = 64

// Login and password length bounds, in bytes, enforced at the request boundary.
const (
	MinLoginLength    = 3
	MaxLoginLength    = 32
	MinPasswordLength = 3
	MaxPasswordLength = 32
)
