package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors returned (wrapped) by [ServerAdapter] implementations.
// Callers match them with [errors.Is].
var (
	// ErrNetwork marks a request that never produced an HTTP response:
	// connection refused, DNS failure, timeout, cancelled context.
	ErrNetwork = errors.New("network error")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx response from the password API.
// Message carries the "error" field of the response body and is empty when
// the body did not contain one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps the status code onto the package sentinels so that
// errors.Is(err, ErrNotFound) works for a wrapped *APIError.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusBadRequest:
		return ErrBadRequest
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode == http.StatusConflict:
		return ErrConflict
	case e.StatusCode >= http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}
