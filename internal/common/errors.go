// Package common defines shared constants and sentinel errors used across
// the edge and central layers of edgesync. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Capture input rejected before any store write.
	ErrValidation = errors.New("validation error")

	// Sync attempted while the terminal reports its central link as down.
	ErrLinkDown = errors.New("central link down")

	// Operation references a terminal without a liveness record.
	ErrUnknownTerminal = errors.New("unknown terminal")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
