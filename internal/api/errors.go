package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error types
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation error")
	ErrTransient    = errors.New("service unavailable")
)

// APIError carries the backend's response context alongside the error class.
// Callers branch on the class (IsNotFound, IsValidation, IsTransient), never
// on raw status codes.
type APIError struct {
	Err        error  `json:"-"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// fromStatus maps a non-2xx response to the error taxonomy. Server messages
// are carried through when present so validation failures stay actionable.
func fromStatus(status int, message string) *APIError {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusNotFound:
		return &APIError{Err: ErrNotFound, Message: message, Code: "NOT_FOUND", HTTPStatus: status}
	case status == http.StatusUnauthorized:
		return &APIError{Err: ErrUnauthorized, Message: message, Code: "UNAUTHORIZED", HTTPStatus: status}
	case status == http.StatusForbidden:
		return &APIError{Err: ErrForbidden, Message: message, Code: "FORBIDDEN", HTTPStatus: status}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity || status == http.StatusConflict:
		return &APIError{Err: ErrValidation, Message: message, Code: "VALIDATION_ERROR", HTTPStatus: status}
	default:
		return &APIError{Err: ErrTransient, Message: message, Code: "UPSTREAM_ERROR", HTTPStatus: status}
	}
}

// IsNotFound reports whether err is a benign missing-resource response.
// Not-found is an empty state for list and profile fetches, never a failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether the server rejected the request as malformed.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsTransient reports whether err is a network or server-side failure worth
// surfacing as a generic notice. Nothing in this layer retries.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
