package owm

import (
	"fmt"
	"log/slog"
	"regexp"
)

var appidPattern = regexp.MustCompile(`(appid=)[^&\s"']+`)

// redact masks the API key in any URL embedded in s.
func redact(s string) string {
	return appidPattern.ReplaceAllString(s, "${1}REDACTED")
}

// restyLogger routes resty's printf-style logging into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(redact(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(redact(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(redact(fmt.Sprintf(format, v...)), "component", "resty")
}
