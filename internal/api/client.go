// Package api provides a client for the multicloud cost summary API.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client fetches cost summaries from the multicloud API.
type Client struct {
	baseURL    string
	timeout    time.Duration
	windowDays int
	http       *http.Client
}

// New creates a client for the given base URL. A zero timeout selects the
// default; windowDays > 0 is sent as the time_window_days query parameter
// on every request, zero defers to the backend's default window. Returns
// nil when the URL is empty, i.e. unconfigured.
func New(baseURL string, timeout time.Duration, windowDays int) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		windowDays: windowDays,
		http:       &http.Client{},
	}
}

// FetchOverview returns the cost overview for the backend's time window.
func (c *Client) FetchOverview(ctx context.Context) (*OverviewSummary, error) {
	body, err := c.get(ctx, "/summary/overview")
	if err != nil {
		return nil, err
	}

	var summary OverviewSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &summary, nil
}

// FetchComparison returns per-provider cost and utilization rows.
func (c *Client) FetchComparison(ctx context.Context) ([]ProviderComparison, error) {
	body, err := c.get(ctx, "/summary/comparison")
	if err != nil {
		return nil, err
	}

	var rows []ProviderComparison
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return rows, nil
}

// FetchRecommendations returns cross-cloud placement suggestions.
func (c *Client) FetchRecommendations(ctx context.Context) ([]Recommendation, error) {
	body, err := c.get(ctx, "/recommendations")
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	if err := json.Unmarshal(body, &recs); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return recs, nil
}

// get performs a GET request and returns the response body.
// A nil receiver means the client is unconfigured; no request is made.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if c == nil {
		return nil, ErrUnconfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + path
	if c.windowDays > 0 {
		url += "?time_window_days=" + strconv.Itoa(c.windowDays)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("api: reading response: %w", err)
	}
	return body, nil
}
