// Package common defines shared constants and sentinel errors used across
// client and server layers of the virtual garden. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors.
	ErrorValidation      = errors.New("validation error")
	ErrorWeakPassword    = errors.New("password should be at least 6 characters")
	ErrorInvalidEmail    = errors.New("invalid email address")
	ErrorInvalidLogin    = errors.New("invalid login credentials")
	ErrorUnknownKind     = errors.New("unknown plant kind")
	ErrorOutOfRange      = errors.New("value out of range")
	ErrorEmptyPlantPatch = errors.New("nothing to update")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
