package session

import (
	"errors"
	"fmt"

	"github.com/propertyhub-dev/propertyhub/internal/api"
)

var (
	// ErrInvalidCredentials means the backend rejected the login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidResponse means a success response was missing the token or
	// the user object
	ErrInvalidResponse = errors.New("invalid response shape from API")

	// ErrNetwork wraps transport-level failures
	ErrNetwork = errors.New("network failure")

	// ErrSuperseded means a newer session operation started before this
	// one resolved; its response was discarded
	ErrSuperseded = errors.New("superseded by a newer session operation")
)

// ValidationError is a client-side validation failure detected before any
// network call is issued
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// mapAuthError converts API client failures into the session error
// taxonomy. Authorization rejections become ErrInvalidCredentials, other
// backend responses pass through, everything else is a transport failure.
func mapAuthError(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Unauthorized() {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return err
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// messageFrom derives a displayable message from a failed operation,
// preferring the backend-supplied message
func messageFrom(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
