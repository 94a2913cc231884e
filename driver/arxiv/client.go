// Package arxiv talks to the external bibliographic search API. It only
// fetches raw Atom documents; parsing lives in the search gateway.
package arxiv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"scholarly/config"
	"scholarly/domain"
	apperrors "scholarly/utils/errors"
	"scholarly/utils/logger"
	"scholarly/utils/rate_limiter"
)

type Client struct {
	baseURL     string
	maxResults  int
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
}

func NewClient(cfg *config.Config, rateLimiter *rate_limiter.HostRateLimiter) *Client {
	return &Client{
		baseURL:     cfg.ArXiv.BaseURL,
		maxResults:  cfg.ArXiv.MaxResults,
		rateLimiter: rateLimiter,
		httpClient: &http.Client{
			Timeout: cfg.HTTP.ClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.HTTP.DialTimeout,
				}).DialContext,
				TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
				IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
			},
		},
	}
}

// FetchFeed performs one search request and returns the raw Atom body.
// searchQuery must already be in field-prefixed, percent-encoded form.
// Transport failures are reported as-is and never retried; a fresh
// user-initiated search is the recovery path.
func (c *Client) FetchFeed(ctx context.Context, searchQuery string) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/query?search_query=%s&start=0&max_results=%d",
		c.baseURL, searchQuery, c.maxResults)

	if c.rateLimiter != nil {
		if err := c.rateLimiter.WaitForHost(ctx, requestURL); err != nil {
			return nil, apperrors.RateLimitError("search request slot not available", err,
				map[string]interface{}{"url": requestURL})
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.SafeErrorContext(ctx, "search upstream request failed", "error", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.TimeoutError("search upstream timed out", err,
				map[string]interface{}{"url": requestURL})
		}
		return nil, apperrors.ExternalAPIError("search upstream unreachable",
			fmt.Errorf("%w: %v", domain.ErrSearchUpstream, err), nil)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.SafeErrorContext(ctx, "search upstream returned non-success status",
			"status", resp.StatusCode)
		return nil, apperrors.ExternalAPIError("search upstream rejected the request",
			fmt.Errorf("%w: unexpected status %d", domain.ErrSearchUpstream, resp.StatusCode),
			map[string]interface{}{"status": resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ExternalAPIError("search upstream response truncated",
			fmt.Errorf("%w: reading response body: %v", domain.ErrSearchUpstream, err), nil)
	}

	return body, nil
}
