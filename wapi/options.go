package wapi

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Defaults
const (
	DefaultBaseURL          = "https://api.wynncraft.com"
	DefaultUserAgent        = "wynnapi-go/1.0"
	DefaultConnectTimeout   = 10 * time.Second
	DefaultRequestTimeout   = 30 * time.Second
	DefaultMaxRetries       = 3
	DefaultRetryDelay       = time.Second
	DefaultMaxConnections   = 10
	DefaultIdleConnTimeout  = 5 * time.Minute
	MaxRetryAttemptsCeiling = 10
	defaultMaxRetryBackoff  = 30 * time.Second
)

// Option configures a Client.
type Option func(*Config)

// Config holds the settings a Client was built with. It is copied on
// construction and never mutated afterwards.
type Config struct {
	BaseURL         string
	UserAgent       string
	ConnectTimeout  time.Duration
	RequestTimeout  time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	LoggingEnabled  bool
	MaxConcurrent   int // 0 means unbounded
	MaxConnections  int
	IdleConnTimeout time.Duration

	logger     *zerolog.Logger
	httpClient *http.Client
	now        func() time.Time
}

func defaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		UserAgent:       DefaultUserAgent,
		ConnectTimeout:  DefaultConnectTimeout,
		RequestTimeout:  DefaultRequestTimeout,
		MaxRetries:      DefaultMaxRetries,
		RetryDelay:      DefaultRetryDelay,
		MaxConnections:  DefaultMaxConnections,
		IdleConnTimeout: DefaultIdleConnTimeout,
	}
}

// WithBaseURL points the client at a different host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		if userAgent != "" {
			c.UserAgent = userAgent
		}
	}
}

// WithConnectTimeout sets the dial timeout.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ConnectTimeout = timeout
	}
}

// WithRequestTimeout sets the overall HTTP client timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.RequestTimeout = timeout
	}
}

// WithMaxRetries sets the maximum number of retries, clamped to [0,10].
func WithMaxRetries(retries int) Option {
	return func(c *Config) {
		c.MaxRetries = max(0, min(retries, MaxRetryAttemptsCeiling))
	}
}

// WithRetryDelay sets the base delay between retry attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Config) {
		c.RetryDelay = delay
	}
}

// WithLogging toggles request logging. Without WithLogger, enabled logging
// writes JSON lines to stderr.
func WithLogging(enabled bool) Option {
	return func(c *Config) {
		c.LoggingEnabled = enabled
	}
}

// WithLogger sets the logger and enables logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.logger = &logger
		c.LoggingEnabled = true
	}
}

// WithMaxConcurrent bounds the number of asynchronous requests in flight.
func WithMaxConcurrent(n int) Option {
	return func(c *Config) {
		c.MaxConcurrent = max(0, n)
	}
}

// WithMaxConnections sets the per-host connection ceiling (at least 1).
func WithMaxConnections(n int) Option {
	return func(c *Config) {
		c.MaxConnections = max(1, n)
	}
}

// WithIdleConnTimeout sets how long idle connections are kept.
func WithIdleConnTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.IdleConnTimeout = timeout
	}
}

// WithHTTPClient replaces the transport entirely. Timeout and connection
// settings are then taken from the supplied client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.httpClient = client
	}
}

func withClock(now func() time.Time) Option {
	return func(c *Config) {
		c.now = now
	}
}

func (c *Config) buildLogger() zerolog.Logger {
	if !c.LoggingEnabled {
		return zerolog.Nop()
	}
	if c.logger != nil {
		return *c.logger
	}
	return zerolog.New(os.Stderr).With().Timestamp().Str("component", "wapi").Logger()
}
