package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Section is the name of the section (INI) or block (HCL) holding the
	// provider credentials.
	Section = "openweather"
	// KeyField is the name of the field holding the API key.
	KeyField = "api_key"
	// DefaultSecretsFile is read from the working directory when no other
	// path is configured.
	DefaultSecretsFile = "secrets.ini"
)

var (
	ErrMissingSection = errors.New("missing [" + Section + "] section")
	ErrMissingAPIKey  = errors.New("missing " + KeyField + " field")
)

// Credentials is the unified, format-agnostic representation of the
// secrets file.
type Credentials struct {
	APIKey string
}

// NewCredentials validates the raw key read from a file.
func NewCredentials(apiKey string) (*Credentials, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Credentials{APIKey: apiKey}, nil
}

// LoadError reports that the credentials could not be read, before any
// request was attempted.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
