package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/weather/internal/app"
	"github.com/vk/weather/internal/config"
	"github.com/vk/weather/internal/presenter"
	"github.com/vk/weather/internal/query"
)

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags may appear before, between or after the city words.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("weather", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
weather - current weather conditions for a city.

Usage:
  weather [options] CITY...

Arguments:
  CITY
    City name; several words are joined with spaces, e.g. New York.

Options:
`)
		flagSet.PrintDefaults()
	}

	var imperial bool
	flagSet.BoolVar(&imperial, "imperial", false, "Display the temperature in imperial units.")
	flagSet.BoolVar(&imperial, "i", false, "Display the temperature in imperial units (shorthand).")
	secretsFlag := flagSet.String("secrets", config.DefaultSecretsFile, "Path to the .ini or .hcl file holding the API key.")
	endpointFlag := flagSet.String("endpoint", query.BaseURL, "Current weather endpoint.")
	timeoutFlag := flagSet.Duration("timeout", 10*time.Second, "HTTP request timeout. 0 disables it.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	colorFlag := flagSet.String("color", "auto", "Colorize output. Options: 'auto', 'always', 'never'.")
	metricsFlag := flagSet.String("metrics-textfile", "", "Write run metrics in Prometheus text format to this file.")

	city, err := parseInterspersed(flagSet, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "words", len(city))

	if len(city) == 0 {
		slog.Debug("No city provided, printing usage.")
		flagSet.Usage()
		return nil, false, &ExitError{Code: ExitUsage, Message: "missing required argument: CITY"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	colorMode, err := presenter.ParseMode(strings.ToLower(*colorFlag))
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		City:        city,
		Imperial:    imperial,
		SecretsPath: *secretsFlag,
		BaseURL:     *endpointFlag,
		Timeout:     *timeoutFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		ColorMode:   colorMode,
		MetricsFile: *metricsFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return cfg, false, nil
}

// parseInterspersed parses flags wherever they appear among the
// positional arguments. Everything after "--" is positional.
func parseInterspersed(flagSet *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flagSet.Parse(args); err != nil {
			return nil, err
		}
		rest := flagSet.Args()
		consumed := len(args) - len(rest)
		if consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
