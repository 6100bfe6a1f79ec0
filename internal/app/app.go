package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/weather/internal/config"
	"github.com/vk/weather/internal/metric"
	"github.com/vk/weather/internal/presenter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	loader    config.Loader
	presenter *presenter.Presenter
	metrics   *metric.Recorder
}

// NewApp is the constructor for the main application. The weather line
// goes to outW and log records go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		loader:    loader,
		presenter: presenter.New(cfg.ColorMode),
	}
	if cfg.MetricsFile != "" {
		a.metrics = metric.New()
	}
	return a
}
