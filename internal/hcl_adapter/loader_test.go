package hcl_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/weather/internal/config"
)

func writeSecrets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "secrets.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		expectErrIs error
		expectErr   string
		expected    string
	}{
		{
			name: "canonical block",
			content: `
openweather {
  api_key = "abc123"
}
`,
			expected: "abc123",
		},
		{
			name: "unrelated blocks and attributes are ignored",
			content: `
log_level = "debug"

openweather {
  api_key = "abc123"
  units   = "metric"
}
`,
			expected: "abc123",
		},
		{
			name:     "numeric key is converted to string",
			content:  "openweather {\n  api_key = 12345\n}\n",
			expected: "12345",
		},
		{
			name:        "error - missing block",
			content:     "weather {\n  api_key = \"abc123\"\n}\n",
			expectErrIs: config.ErrMissingSection,
		},
		{
			name:        "error - missing key",
			content:     "openweather {\n  token = \"abc123\"\n}\n",
			expectErrIs: config.ErrMissingAPIKey,
		},
		{
			name:        "error - empty key",
			content:     "openweather {\n  api_key = \"\"\n}\n",
			expectErrIs: config.ErrMissingAPIKey,
		},
		{
			name:        "error - null key",
			content:     "openweather {\n  api_key = null\n}\n",
			expectErrIs: config.ErrMissingAPIKey,
		},
		{
			name:      "error - duplicate block",
			content:   "openweather {\n  api_key = \"a\"\n}\nopenweather {\n  api_key = \"b\"\n}\n",
			expectErr: "duplicate \"openweather\" block",
		},
		{
			name:      "error - list value",
			content:   "openweather {\n  api_key = [\"a\", \"b\"]\n}\n",
			expectErr: "api_key must be a string",
		},
		{
			name:      "error - variable reference",
			content:   "openweather {\n  api_key = var.key\n}\n",
			expectErr: "failed to evaluate api_key",
		},
		{
			name:      "error - syntax",
			content:   "openweather {\n  api_key = \"abc123\"\n",
			expectErr: "failed to parse HCL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSecrets(t, tc.content)

			creds, err := NewLoader().Load(context.Background(), path)

			if tc.expectErrIs != nil || tc.expectErr != "" {
				require.Error(t, err)
				var loadErr *config.LoadError
				require.ErrorAs(t, err, &loadErr)
				if tc.expectErrIs != nil {
					require.ErrorIs(t, err, tc.expectErrIs)
				}
				if tc.expectErr != "" {
					require.Contains(t, err.Error(), tc.expectErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, creds.APIKey)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))

	require.ErrorIs(t, err, os.ErrNotExist)
}
