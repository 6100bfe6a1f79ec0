package owm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedact(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "key in the middle", input: "GET http://h/w?q=Paris&appid=abc123&x=1", expected: "GET http://h/w?q=Paris&appid=REDACTED&x=1"},
		{name: "key at the end", input: `Get "http://h/w?q=Paris&appid=abc123": dial tcp`, expected: `Get "http://h/w?q=Paris&appid=REDACTED": dial tcp`},
		{name: "no key", input: "connection refused", expected: "connection refused"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact(tc.input))
		})
	}
}

func TestRestyLogger_RedactsKey(t *testing.T) {
	var buf bytes.Buffer
	l := restyLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	l.Errorf("%v, Attempt %d", `Get "http://h/w?appid=abc123": refused`, 1)
	l.Warnf("retrying http://h/w?appid=abc123")
	l.Debugf("done")

	out := buf.String()
	require.NotContains(t, out, "abc123")
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "component=resty")
}
