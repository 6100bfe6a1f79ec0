package owm

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrUnauthorized is returned for HTTP 401: the API key was rejected.
	ErrUnauthorized = errors.New("access denied: API key rejected")
	// ErrCityNotFound is returned for HTTP 404.
	ErrCityNotFound = errors.New("city not found")
)

// StatusError is returned for any other non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
}

// DecodeError is returned when a successful response body is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when no HTTP response was received at all.
// The request URL is stripped from the cause.
type TransportError struct {
	Err error
}

func newTransportError(err error) *TransportError {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return &TransportError{Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to execute request: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
