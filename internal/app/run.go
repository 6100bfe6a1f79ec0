package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/weather/internal/ctxlog"
	"github.com/vk/weather/internal/metric"
	"github.com/vk/weather/internal/owm"
	"github.com/vk/weather/internal/query"
)

// Run loads the credentials, fetches the weather for the configured city
// and writes one line to the output. Nothing is requested if the
// credentials cannot be loaded.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	creds, err := a.loader.Load(ctx, a.config.SecretsPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Credentials loaded.", "path", a.config.SecretsPath)

	city := query.JoinCity(a.config.City)
	units := query.Units(a.config.Imperial)
	ctx, logger := ctxlog.With(ctx, "city", city, "units", units)

	queryURL := query.Build(a.config.BaseURL, a.config.City, a.config.Imperial, creds.APIKey)

	client := owm.NewClient(logger, a.config.Timeout)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("Failed to close HTTP client.", "error", err)
		}
	}()

	logger.Info("Fetching current weather.")
	start := time.Now()
	report, err := client.Fetch(ctx, queryURL)
	elapsed := time.Since(start)
	a.recordFetch(ctx, err, elapsed)
	if err != nil {
		logger.Debug("Weather request failed.", "error", err, "elapsed", elapsed)
		return err
	}

	var code int
	if len(report.Weather) > 0 {
		code = report.Weather[0].ID
	}
	logger.Info("Weather received.",
		"name", report.Name,
		"country", report.Sys.Country,
		"condition_code", code,
		"elapsed", elapsed,
	)
	a.recordReport(ctx, report, units, code)

	if err := a.presenter.Render(a.outW, report, a.config.Imperial); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) recordFetch(ctx context.Context, err error, elapsed time.Duration) {
	if a.metrics == nil {
		return
	}
	a.metrics.ObserveFetch(outcomeOf(err), elapsed)
	a.flushMetrics(ctx)
}

func (a *App) recordReport(ctx context.Context, report *owm.Report, units string, code int) {
	if a.metrics == nil {
		return
	}
	a.metrics.ObserveReport(report.Name, report.Sys.Country, units, report.Main.Temp, code)
	a.flushMetrics(ctx)
}

// flushMetrics rewrites the textfile. A failed write is logged and does
// not fail the run.
func (a *App) flushMetrics(ctx context.Context) {
	if err := a.metrics.WriteTextfile(a.config.MetricsFile); err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to write metrics textfile.", "path", a.config.MetricsFile, "error", err)
	}
}

func outcomeOf(err error) string {
	var (
		statusErr *owm.StatusError
		decodeErr *owm.DecodeError
	)
	switch {
	case err == nil:
		return metric.OutcomeOK
	case errors.Is(err, owm.ErrUnauthorized):
		return metric.OutcomeUnauthorized
	case errors.Is(err, owm.ErrCityNotFound):
		return metric.OutcomeNotFound
	case errors.As(err, &statusErr):
		return metric.OutcomeHTTPError
	case errors.As(err, &decodeErr):
		return metric.OutcomeDecodeError
	}
	return metric.OutcomeTransport
}
