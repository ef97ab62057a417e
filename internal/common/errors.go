// Package common defines shared constants and sentinel errors used across
// client and server layers of ScanKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Store errors.
	ErrInvalidIndex = errors.New("invalid index")

	// Payload validation errors.
	ErrInvalidPayload = errors.New("invalid payload")

	// Config errors.
	ErrUnknownBackend = errors.New("unknown backend")
)
