// Package common defines shared sentinel errors used across the service.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound           = errors.New("not found")
	ErrorAlreadyExists      = errors.New("already exists")
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Service-level errors (expected, validated control flow).
	ErrorValidation = errors.New("validation error")

	// Auth errors. Unknown email and wrong password intentionally map to the
	// same value so responses never leak account existence.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorInvalidToken       = errors.New("invalid token")
)
