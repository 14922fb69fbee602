package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/x88a9/edge-lab/internal/metrics"
)

// Config holds the HTTP client tuning knobs.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	RateLimit    float64 // requests per second
}

// DefaultConfig returns recommended defaults for a local API.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "http://localhost:8000",
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		RateLimit:    10.0,
	}
}

// Client is the configured HTTP client for the Edge Lab API: base URL,
// bearer injection from the session, transport-level retries for network
// errors and 429/5xx, and client-side rate limiting.
type Client struct {
	http    *retryablehttp.Client
	limiter *rate.Limiter
	baseURL string
	session *Session
	logger  *logrus.Logger
}

// NewClient creates a new API client bound to a session.
func NewClient(cfg Config, session *Session, logger *logrus.Logger) *Client {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.CheckRetry = retryPolicy()
	retryClient.Logger = nil

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 10.0
	}

	return &Client{
		http:    retryClient,
		limiter: rate.NewLimiter(rate.Limit(limit), 1),
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		session: session,
		logger:  logger,
	}
}

// Session returns the session this client authenticates with.
func (c *Client) Session() *Session {
	return c.session
}

// Ping probes the API's health endpoint. Used by readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "health", "/health", nil, nil)
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.http.HTTPClient.CloseIdleConnections()
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out any) error {
	return c.do(ctx, resource, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, resource, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, resource, path string, body, out any) error {
	return c.do(ctx, resource, http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, resource, path string) error {
	return c.do(ctx, resource, http.MethodDelete, path, nil, nil, nil)
}

// do executes one API call. 401 invalidates the session (once per
// session) and is terminal for the call; 4xx/5xx propagate as *Error
// with the detail body collapsed; everything else decodes into out.
func (c *Client) do(ctx context.Context, resource, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		metrics.RecordRequest(resource, outcome, time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		outcome = "canceled"
		return fmt.Errorf("rate limiter: %w", err)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			outcome = "encode_error"
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(raw))
	if err != nil {
		outcome = "encode_error"
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	// Correlates client logs with server-side request logs.
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = "network_error"
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method":     method,
			"path":       path,
			"request_id": requestID,
		}).Warn("API request failed")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		outcome = "unauthorized"
		metrics.AuthFailuresTotal.Inc()
		c.session.invalidate()
		c.logger.WithField("path", path).Info("Session rejected, logged out")
		return fmt.Errorf("%w: %s %s", ErrUnauthorized, method, path)
	}

	if resp.StatusCode >= 400 {
		outcome = fmt.Sprintf("http_%d", resp.StatusCode)
		payload, _ := io.ReadAll(resp.Body)
		apiErr := &Error{Status: resp.StatusCode, Message: CollapseDetail(payload)}
		c.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug("API request rejected")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// retryPolicy retries network errors, 429 and 5xx. Other 4xx responses,
// 401 included, never retry.
func retryPolicy() retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err != nil {
			return true, err
		}
		if resp.StatusCode == 429 || resp.StatusCode >= 500 {
			return true, nil
		}
		return false, nil
	}
}
