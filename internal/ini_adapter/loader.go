// Package ini_adapter reads credentials from INI files of the form
//
//	[openweather]
//	api_key = <API KEY VALUE>
package ini_adapter

import (
	"context"
	"os"

	"github.com/vk/weather/internal/config"
	"github.com/vk/weather/internal/ctxlog"
	"gopkg.in/ini.v1"
)

// Loader is the INI-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new INI credential loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the [openweather] section of the INI file at path. Keys are
// matched case-insensitively; section names are not.
func (l *Loader) Load(ctx context.Context, path string) (*config.Credentials, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("INI loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: err}
	}

	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, data)
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: err}
	}

	section, err := file.GetSection(config.Section)
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: config.ErrMissingSection}
	}
	if !section.HasKey(config.KeyField) {
		return nil, &config.LoadError{Path: path, Err: config.ErrMissingAPIKey}
	}

	creds, err := config.NewCredentials(section.Key(config.KeyField).String())
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: err}
	}

	logger.Debug("INI loading complete.")
	return creds, nil
}
