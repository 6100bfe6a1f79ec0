// Package hcl_adapter reads credentials from HCL files of the form
//
//	openweather {
//	  api_key = "<API KEY VALUE>"
//	}
package hcl_adapter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/weather/internal/config"
	"github.com/vk/weather/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL credential loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the provider block and tolerates anything else in the file.
type fileRoot struct {
	Providers []*providerBlock `hcl:"openweather,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type providerBlock struct {
	APIKey hcl.Expression `hcl:"api_key,optional"`
	Remain hcl.Body       `hcl:",remain"`
}

// Load parses the HCL file at path and returns the key from its single
// openweather block.
func (l *Loader) Load(ctx context.Context, path string) (*config.Credentials, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: err}
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, &config.LoadError{Path: path, Err: fmt.Errorf("failed to parse HCL: %w", diags)}
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, &config.LoadError{Path: path, Err: fmt.Errorf("failed to decode HCL: %w", diags)}
	}

	switch len(root.Providers) {
	case 0:
		return nil, &config.LoadError{Path: path, Err: config.ErrMissingSection}
	case 1:
	default:
		return nil, &config.LoadError{Path: path, Err: errors.New("duplicate \"" + config.Section + "\" block")}
	}

	block := root.Providers[0]
	if !isExprDefined(ctx, block.APIKey, config.KeyField) {
		return nil, &config.LoadError{Path: path, Err: config.ErrMissingAPIKey}
	}

	raw, err := stringValue(block.APIKey)
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: err}
	}

	creds, err := config.NewCredentials(raw)
	if err != nil {
		return nil, &config.LoadError{Path: path, Err: err}
	}

	logger.Debug("HCL loading complete.")
	return creds, nil
}
