package api

import (
	"errors"
	"fmt"
)

// APIError represents a failed request to an endpoint.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound returns true if the endpoint does not exist.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}

// IsServerError returns true if the error is a 5xx server error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// IsAPIError checks if an error is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsApplicationError checks if an error is an ApplicationError and returns it.
func IsApplicationError(err error) (*ApplicationError, bool) {
	var appErr *ApplicationError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// DecodeError reports a collection that could not be decoded or that held
// a record failing validation. Index is -1 when the collection as a whole
// was unreadable.
type DecodeError struct {
	Endpoint string
	Index    int
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed response from %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("malformed record %d from %s: %v", e.Index, e.Endpoint, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func notFound(endpoint string) *APIError {
	return &APIError{
		StatusCode: 404,
		Endpoint:   endpoint,
		Message:    "Endpoint not found: " + endpoint,
	}
}
