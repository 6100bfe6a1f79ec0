package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/vk/weather/internal/app"
	"github.com/vk/weather/internal/cli"
	"github.com/vk/weather/internal/config"
	"github.com/vk/weather/internal/hcl_adapter"
	"github.com/vk/weather/internal/ini_adapter"
)

// main is the entrypoint for the weather application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	// The real main function handles errors and exit codes.
	if err != nil {
		exitErr := cli.ExitErrorFor(err)
		fmt.Fprintln(os.Stderr, exitErr.Message)
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	weatherApp := app.NewApp(outW, errW, appConfig, newLoader(appConfig.SecretsPath))
	return weatherApp.Run(ctx)
}

// newLoader picks the credential file format from its extension.
func newLoader(path string) config.Loader {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return hcl_adapter.NewLoader()
	}
	return ini_adapter.NewLoader()
}
