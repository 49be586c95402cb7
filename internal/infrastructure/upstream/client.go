// Package upstream talks to the shop API that owns the catalog,
// sessions and order intake. The storefront never persists orders
// itself; it hands them off here.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/retrorevival/storefront/internal/infrastructure/config"
	"go.uber.org/zap"
)

// maxResponseSize is the maximum allowed response size from the shop API (1MB)
const maxResponseSize = 1 * 1024 * 1024

// ErrUpstreamUnavailable indicates the shop API could not be reached
var ErrUpstreamUnavailable = errors.New("upstream: shop API unavailable")

// Client is an HTTP client for the shop API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a shop API client from configuration
func NewClient(cfg *config.UpstreamConfig, log *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}, nil
}

// doRequest performs an HTTP request against the shop API and returns
// the raw body along with the status code. Bodies are read with a hard
// size cap.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any, cookie string) (int, []byte, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid upstream path %q: %w", path, err)
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, body, nil
}
