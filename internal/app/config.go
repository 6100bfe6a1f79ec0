package app

import (
	"errors"
	"strings"
	"time"

	"github.com/vk/weather/internal/config"
	"github.com/vk/weather/internal/presenter"
	"github.com/vk/weather/internal/query"
)

// ErrMissingCity is returned when no city words were given.
var ErrMissingCity = errors.New("a city name is required")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	City     []string
	Imperial bool

	SecretsPath string // INI or HCL credential file
	BaseURL     string
	Timeout     time.Duration // 0 disables the client timeout

	LogFormat   string
	LogLevel    string
	ColorMode   presenter.Mode
	MetricsFile string // empty disables the textfile export
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	words := make([]string, 0, len(cfg.City))
	for _, w := range cfg.City {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil, ErrMissingCity
	}
	cfg.City = words

	if cfg.Timeout < 0 {
		return nil, errors.New("timeout must not be negative")
	}
	if cfg.SecretsPath == "" {
		cfg.SecretsPath = config.DefaultSecretsFile
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = query.BaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return &cfg, nil
}
