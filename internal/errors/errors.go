// Package errors defines the HTTP error contract. Upstream and pipeline
// failures are absorbed into the normal result envelope; only
// caller-parameter problems surface here, as non-200 responses with a
// flat {"error": "..."} body.
package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

// APIError is a caller-facing error with an HTTP status. The JSON shape
// is the same {"error": string} envelope dataset failures use.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string { return e.Message }

// Render implements render.Renderer for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates an APIError with the given status and message.
func New(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// ErrMissingParam reports an absent required query parameter.
func ErrMissingParam(name string) *APIError {
	return New(http.StatusBadRequest, fmt.Sprintf("missing required parameter: %s", name))
}

// ErrInvalidParam reports a malformed query parameter value.
func ErrInvalidParam(name, reason string) *APIError {
	return New(http.StatusBadRequest, fmt.Sprintf("invalid parameter %s: %s", name, reason))
}

// ErrUnknownType reports an unrecognized dataset selector. The message
// lists only the accepted values; the rejected input is never echoed back.
func ErrUnknownType(valid []string) *APIError {
	return New(http.StatusBadRequest,
		fmt.Sprintf("unknown type (valid: %s)", strings.Join(valid, ", ")))
}

// ErrInternal reports an unexpected server-side failure.
func ErrInternal(message string) *APIError {
	if message == "" {
		message = "internal server error"
	}
	return New(http.StatusInternalServerError, message)
}
