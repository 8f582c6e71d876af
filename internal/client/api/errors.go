package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/jobboard/internal/common"
)

// APIError is returned for non-2xx responses and for envelopes with
// success=false. Message carries the server-provided text when there is one.
type APIError struct {
	Status  int
	Message string
	Body    []byte
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return common.ErrUnauthorized
	case http.StatusForbidden:
		return common.ErrAccessDenied
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return common.ErrRejected
	}
}

// MessageOr returns the server-provided message carried by err, or fallback
// when err carries none.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
