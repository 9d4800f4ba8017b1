// Package common defines shared constants and sentinel errors used across
// the service, repository, and transport layers. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal        = errors.New("internal error")
	ErrorInvalidInput    = errors.New("invalid input")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorForbidden       = errors.New("forbidden")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token/code lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	ErrCodeExpired  = errors.New("verification code expired")
)
