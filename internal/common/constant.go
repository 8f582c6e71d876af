// Package common contains shared constants and sentinel errors used across
// the jobboard client packages.
package common

// Header names attached by the API adapter to every outbound request.
const (
	AuthorizationHeaderName = "Authorization"
	APIKeyHeaderName        = "x-api-key"
	ContentTypeHeaderName   = "Content-Type"
	RequestIDHeaderName     = "X-Request-ID"
)

// BearerScheme prefixes the credential in the Authorization header.
const BearerScheme = "Bearer"

// CredentialStorageKey is the fixed key the credential is persisted under.
const CredentialStorageKey = "token"
