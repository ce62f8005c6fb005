package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/config"
)

// StatusError is a definitive non-2xx answer from a peer service. The peer
// was reachable and said no; retrying would not change the answer.
type StatusError struct {
	Status int
	Body   []byte
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// Client is the HTTP client used for all calls between services. Transport
// failures and 5xx responses are retried up to MaxAttempts; 4xx responses
// come back immediately as *StatusError. When every attempt fails the call
// reports shared.ErrUpstreamUnavailable, so callers can distinguish "the
// peer said no" from "the peer could not be reached".
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxAttempts int
	retryWait   time.Duration
	logger      *zap.Logger
}

// NewClient creates a client for one peer service base URL
func NewClient(baseURL string, cfg config.ClientConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxAttempts: cfg.MaxAttempts,
		retryWait:   cfg.RetryWait,
		logger:      logger,
	}
}

// Get performs a GET request and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	body, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// Do performs a request with retries and returns the raw response body.
// A nil error means a 2xx answer. Request bodies are marshaled as JSON.
func (c *Client) Do(ctx context.Context, method, path string, reqBody any) ([]byte, error) {
	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return nil, err
		}
	}

	url := c.baseURL + path
	attempt := 0

	operation := func() ([]byte, error) {
		attempt++
		body, err := c.attempt(ctx, method, url, payload)
		if err == nil {
			return body, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Status < http.StatusInternalServerError {
			// Definitive answer from the peer; do not retry.
			return nil, backoff.Permanent(err)
		}

		c.logger.Warn("remote call attempt failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return nil, err
	}

	body, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.retryWait)),
		backoff.WithMaxTries(uint(c.maxAttempts)),
	)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Status < http.StatusInternalServerError {
			return nil, statusErr
		}
		c.logger.Error("remote call exhausted retries",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("attempts", attempt),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, url, shared.ErrUpstreamUnavailable)
	}
	return body, nil
}

// attempt performs a single request
func (c *Client) attempt(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.StatusCode, Body: body}
	}
	return body, nil
}
