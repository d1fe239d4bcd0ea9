package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-2xx response from the backend
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Unauthorized reports whether the response was an authorization failure
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// parseAPIError extracts a human-readable message from an error response
// body. Backends in the wild disagree on the field name, so both "message"
// and "error" are accepted; anything else falls back to the raw body or
// the HTTP status text.
func parseAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return &APIError{Status: status, Message: payload.Message}
		}
		if payload.Error != "" {
			return &APIError{Status: status, Message: payload.Error}
		}
	}

	if msg := strings.TrimSpace(string(body)); msg != "" && len(msg) <= 200 {
		return &APIError{Status: status, Message: msg}
	}
	return &APIError{Status: status, Message: http.StatusText(status)}
}
