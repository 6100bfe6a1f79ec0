package config

import "context"

// Loader is the interface for a format-specific credential loader.
type Loader interface {
	// Load reads the credential file at path and returns the API key it
	// holds. Any failure is reported as a *LoadError.
	Load(ctx context.Context, path string) (*Credentials, error)
}
