// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// Remote API answered with success=false or a non-2xx status.
	ErrRejected = errors.New("request rejected")
	ErrNotFound = errors.New("not found")

	// Local authorization decision (role mismatch).
	ErrAccessDenied = errors.New("access denied")

	// Credential payload could not be decoded into an identity.
	ErrInvalidCredential = errors.New("invalid credential")
)
