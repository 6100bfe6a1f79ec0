package owm

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/vk/weather/internal/ctxlog"
	"resty.dev/v3"
)

// Client performs the single weather request of a run.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client with an explicit timeout. A zero timeout
// leaves the request bounded only by the caller's context. A nil logger
// means slog.Default().
func NewClient(logger *slog.Logger, timeout time.Duration) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rc := resty.New().
		SetLogger(restyLogger{logger: logger}).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Client{http: rc}
}

// Fetch performs a GET on queryURL and decodes the report. Status codes
// are checked before the body is read as JSON.
func (c *Client) Fetch(ctx context.Context, queryURL string) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Requesting current weather.")

	res, err := c.http.R().
		SetContext(ctx).
		Get(queryURL)
	if err != nil {
		return nil, newTransportError(err)
	}

	logger.Debug("Received weather response.", "status", res.StatusCode())

	switch code := res.StatusCode(); {
	case code == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case code == http.StatusNotFound:
		return nil, ErrCityNotFound
	case !res.IsSuccess():
		return nil, &StatusError{StatusCode: code}
	}

	var report Report
	if err := json.Unmarshal(res.Bytes(), &report); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &report, nil
}

// Close releases idle connections held by the underlying client.
func (c *Client) Close() error {
	return c.http.Close()
}
