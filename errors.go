package graphley

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is an error response from the graph database (status >= 400).
type APIError struct {
	StatusCode int
	Message    string
}

// Error returns the error string.
func (e *APIError) Error() string {
	return fmt.Sprintf("graphley: API error (status %d): %s", e.StatusCode, e.Message)
}

// IsAPIError returns true if the error is an APIError.
func IsAPIError(err error) bool {
	if err == nil {
		return false
	}
	var e *APIError
	return errors.As(err, &e)
}

// newAPIError builds an APIError from a failed response body, preferring
// the server's {"error": "..."} message when the body carries one.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{StatusCode: status, Message: payload.Error}
	}
	return &APIError{StatusCode: status, Message: string(body)}
}
