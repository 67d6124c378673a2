// Package apierror defines the HTTP error taxonomy of the API: every failure
// surfaced to a client carries a status code and a human-readable message.
// Handlers funnel all errors through a single response-mapping step, so an
// error that is not an *apierror.Error is reported as a 500.
package apierror

import (
	"errors"
	"net/http"
)

// Error is an API failure with an associated HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest reports invalid or missing input (400).
func BadRequest(message string) *Error {
	if message == "" {
		message = "Bad Request"
	}
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized reports missing or invalid credentials (401).
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized"
	}
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden reports an authenticated caller acting on a resource it does not
// own (403).
func Forbidden(message string) *Error {
	if message == "" {
		message = "Forbidden"
	}
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound reports a missing resource or unmatched route (404).
func NotFound(message string) *Error {
	if message == "" {
		message = "Not Found"
	}
	return &Error{Status: http.StatusNotFound, Message: message}
}

// StatusOf extracts the HTTP status from err, or 500 when err carries none.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the client-facing message from err. Errors without an
// associated status are not leaked to clients.
func MessageOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong"
}
