package ini_adapter

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
	path := filepath.Join(t.TempDir(), "secrets.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr error
		expected  string
	}{
		{
			name:     "canonical file",
			content:  "[openweather]\napi_key=abc123\n",
			expected: "abc123",
		},
		{
			name:     "indented key and spaces around equals",
			content:  "[openweather]\n   api_key = abc123\n",
			expected: "abc123",
		},
		{
			name:     "key is case insensitive",
			content:  "[openweather]\nAPI_KEY=abc123\n",
			expected: "abc123",
		},
		{
			name:     "other sections are ignored",
			content:  "[other]\napi_key=nope\n\n[openweather]\napi_key=abc123\n",
			expected: "abc123",
		},
		{
			name:      "error - missing section",
			content:   "[weather]\napi_key=abc123\n",
			expectErr: config.ErrMissingSection,
		},
		{
			name:      "error - missing key",
			content:   "[openweather]\ntoken=abc123\n",
			expectErr: config.ErrMissingAPIKey,
		},
		{
			name:      "error - empty key",
			content:   "[openweather]\napi_key=\n",
			expectErr: config.ErrMissingAPIKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSecrets(t, tc.content)

			creds, err := NewLoader().Load(context.Background(), path)

			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				var loadErr *config.LoadError
				require.ErrorAs(t, err, &loadErr)
				assert.Equal(t, path, loadErr.Path)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, creds.APIKey)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secrets.ini")

	_, err := NewLoader().Load(context.Background(), path)

	require.ErrorIs(t, err, os.ErrNotExist)
	var loadErr *config.LoadError
	require.ErrorAs(t, err, &loadErr)
}
