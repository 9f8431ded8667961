package wapi

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// Client is a Wynncraft API client. It is safe for concurrent use; the only
// state shared between requests is the rate limit tracker.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	tracker    *rateLimitTracker
	inflight   *semaphore.Weighted

	Players      *PlayerService
	Guilds       *GuildService
	Items        *ItemService
	Leaderboards *LeaderboardService
	Abilities    *AbilityService
	Map          *MapService
	Search       *SearchService
	Classes      *ClassService
	News         *NewsService
}

// NewClient creates a new Wynncraft API client
func NewClient(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", cfg.BaseURL)
	}

	c := &Client{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: cfg.httpClient,
		logger:     cfg.buildLogger(),
		tracker:    newRateLimitTracker(cfg.now),
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(cfg)
	}
	if cfg.MaxConcurrent > 0 {
		c.inflight = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}

	c.Players = &PlayerService{client: c}
	c.Guilds = &GuildService{client: c}
	c.Items = &ItemService{client: c}
	c.Leaderboards = &LeaderboardService{client: c}
	c.Abilities = &AbilityService{client: c}
	c.Map = &MapService{client: c}
	c.Search = &SearchService{client: c}
	c.Classes = &ClassService{client: c}
	c.News = &NewsService{client: c}

	return c, nil
}

func newHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		ForceAttemptHTTP2:   true,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
		MaxConnsPerHost:     cfg.MaxConnections,
		MaxIdleConnsPerHost: cfg.MaxConnections,
		IdleConnTimeout:     cfg.IdleConnTimeout,
	}
	return &http.Client{
		Transport: transport,
		Timeout:   cfg.RequestTimeout,
	}
}

// Config returns a copy of the settings the client was built with.
func (c *Client) Config() Config {
	return c.cfg
}

// RateLimitStatus returns the most recently observed rate limit state.
func (c *Client) RateLimitStatus() RateLimitStatus {
	return c.tracker.Status()
}

// GetValue fetches an endpoint whose schema is not modeled.
func (c *Client) GetValue(ctx context.Context, endpoint string, params ...Param) Result[Value] {
	return Get[Value](ctx, c, endpoint, params...)
}
