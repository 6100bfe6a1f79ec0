package cli

import (
	"errors"
	"fmt"

	"github.com/vk/weather/internal/config"
	"github.com/vk/weather/internal/owm"
	"github.com/vk/weather/internal/presenter"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitConfig       = 3
	ExitUnauthorized = 4
	ExitNotFound     = 5
	ExitHTTPStatus   = 6
	ExitBadResponse  = 7
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ExitErrorFor maps an error returned by the application to the message
// shown to the user and the process exit code.
func ExitErrorFor(err error) *ExitError {
	var (
		exitErr      *ExitError
		loadErr      *config.LoadError
		statusErr    *owm.StatusError
		decodeErr    *owm.DecodeError
		transportErr *owm.TransportError
	)

	switch {
	case errors.As(err, &exitErr):
		return exitErr
	case errors.As(err, &loadErr):
		return &ExitError{Code: ExitConfig, Message: "Can't load the API key: " + loadErr.Error()}
	case errors.Is(err, owm.ErrUnauthorized):
		return &ExitError{Code: ExitUnauthorized, Message: "Access denied. Check your API key."}
	case errors.Is(err, owm.ErrCityNotFound):
		return &ExitError{Code: ExitNotFound, Message: "Can't find weather data for this city."}
	case errors.As(err, &statusErr):
		return &ExitError{Code: ExitHTTPStatus, Message: fmt.Sprintf("Something went wrong... (%d)", statusErr.StatusCode)}
	case errors.As(err, &decodeErr), errors.Is(err, presenter.ErrNoConditions):
		return &ExitError{Code: ExitBadResponse, Message: "Couldn't read the server response."}
	case errors.As(err, &transportErr):
		return &ExitError{Code: ExitFailure, Message: "Couldn't reach the weather service: " + transportErr.Err.Error()}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}
