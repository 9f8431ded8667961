package wapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/avast/retry-go"
)

// Param is a single query parameter. Parameters keep the order they are given in.
type Param struct {
	Key   string
	Value string
}

// P is shorthand for Param{Key: key, Value: value}.
func P(key, value string) Param {
	return Param{Key: key, Value: value}
}

// buildURL joins base and endpoint with exactly one slash and appends the
// escaped query parameters in order.
func buildURL(base, endpoint string, params []Param) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))
	if !strings.HasPrefix(endpoint, "/") {
		sb.WriteByte('/')
	}
	sb.WriteString(endpoint)

	for i, p := range params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}

	return sb.String()
}

// Get performs a GET against endpoint and decodes the body into T.
// It never panics and never returns a raw error: every outcome is a Result.
func Get[T any](ctx context.Context, c *Client, endpoint string, params ...Param) Result[T] {
	body, err := c.do(ctx, endpoint, params)
	if err != nil {
		return FailureErr[T](err)
	}
	return decode[T](body)
}

// Fetch is the asynchronous form of Get.
func Fetch[T any](ctx context.Context, c *Client, endpoint string, params ...Param) *Future[T] {
	return Async(ctx, c, func(ctx context.Context) Result[T] {
		return Get[T](ctx, c, endpoint, params...)
	})
}

func decode[T any](body []byte) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = FailureErr[T](&DecodeError{Err: fmt.Errorf("%v", p)})
		}
	}()

	var data T
	if err := json.Unmarshal(body, &data); err != nil {
		return FailureErr[T](&DecodeError{Err: err})
	}
	return Success(data)
}

// do issues the request, retrying transport failures and 429s.
func (c *Client) do(ctx context.Context, endpoint string, params []Param) ([]byte, error) {
	requestURL := buildURL(c.baseURL, endpoint, params)

	var body []byte
	attempt := func() error {
		b, err := c.doOnce(ctx, requestURL)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	var err error
	if c.cfg.MaxRetries == 0 {
		err = attempt()
	} else {
		err = retry.Do(attempt,
			retry.Context(ctx),
			retry.Attempts(uint(c.cfg.MaxRetries)+1),
			retry.Delay(c.cfg.RetryDelay),
			retry.MaxDelay(defaultMaxRetryBackoff),
			retry.DelayType(retry.BackOffDelay),
			retry.LastErrorOnly(true),
			retry.RetryIf(isRetryable),
			retry.OnRetry(func(n uint, err error) {
				c.logger.Warn().
					Err(err).
					Uint("attempt", n+1).
					Str("url", requestURL).
					Msg("Wynncraft API request attempt failed")
			}),
		)
	}
	if err != nil {
		return nil, classifyError(err, requestURL)
	}

	return body, nil
}

func (c *Client) doOnce(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &NetworkError{Method: http.MethodGet, URL: requestURL, Err: err}
	}

	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("method", http.MethodGet).
		Str("url", requestURL).
		Msg("Making Wynncraft API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: http.MethodGet, URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	// Headers are applied before classification so a 429 reports the reset it carries.
	c.tracker.update(resp.Header)
	status := c.tracker.Status()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Method: http.MethodGet, URL: requestURL, Err: err}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("remaining", status.Remaining).
		Int("limit", status.Limit).
		Msg("Wynncraft API response")

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{ResetIn: status.SecondsUntilReset, Remaining: status.Remaining}
	case resp.StatusCode != http.StatusOK:
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body), URL: requestURL}
	}

	return body, nil
}

func isRetryable(err error) bool {
	var netErr *NetworkError
	var rlErr *RateLimitError
	return errors.As(err, &netErr) || errors.As(err, &rlErr)
}

// classifyError makes sure anything leaving the pipeline is one of the typed
// errors; a context cancelled between retries surfaces as a NetworkError.
func classifyError(err error, requestURL string) error {
	var (
		netErr *NetworkError
		rlErr  *RateLimitError
		apiErr *APIError
	)
	switch {
	case errors.As(err, &netErr), errors.As(err, &rlErr), errors.As(err, &apiErr):
		return err
	default:
		return &NetworkError{Method: http.MethodGet, URL: requestURL, Err: err}
	}
}
