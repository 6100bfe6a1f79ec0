// Package metric records the outcome of a run in Prometheus text format,
// for pickup by the node_exporter textfile collector when the tool is run
// from cron.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for weather_fetch_total.
const (
	OutcomeOK           = "ok"
	OutcomeUnauthorized = "unauthorized"
	OutcomeNotFound     = "not_found"
	OutcomeHTTPError    = "http_error"
	OutcomeDecodeError  = "decode_error"
	OutcomeTransport    = "transport_error"
)

// Recorder holds the metrics of a single run in its own registry.
type Recorder struct {
	registry      *prometheus.Registry
	fetchDuration prometheus.Histogram
	fetchTotal    *prometheus.CounterVec
	temperature   *prometheus.GaugeVec
	conditionCode *prometheus.GaugeVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "weather_fetch_duration_seconds",
				Help:    "Histogram of weather API request durations.",
				Buckets: prometheus.DefBuckets,
			},
		),
		fetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_fetch_total",
				Help: "Weather API requests by outcome.",
			},
			[]string{"outcome"},
		),
		temperature: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "weather_temperature_degrees",
				Help: "Last reported temperature.",
			},
			[]string{"city", "country", "units"},
		),
		conditionCode: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "weather_condition_code",
				Help: "Last reported primary condition code.",
			},
			[]string{"city", "country"},
		),
	}
	r.registry.MustRegister(r.fetchDuration, r.fetchTotal, r.temperature, r.conditionCode)
	return r
}

func (r *Recorder) ObserveFetch(outcome string, d time.Duration) {
	r.fetchDuration.Observe(d.Seconds())
	r.fetchTotal.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveReport(city, country, units string, temp float64, code int) {
	r.temperature.WithLabelValues(city, country, units).Set(temp)
	r.conditionCode.WithLabelValues(city, country).Set(float64(code))
}

// WriteTextfile atomically replaces path with the current metrics.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
