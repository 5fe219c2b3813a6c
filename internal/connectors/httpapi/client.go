// Package httpapi holds the HTTP plumbing shared by every connector:
// a JSON client with a uniform timeout and user agent, and the per-key
// fetch loop that enforces failure isolation and the post-call hold.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/corpusfetch/internal/core/domain"
)

// Client performs JSON GET requests against public APIs.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a client with the given per-request timeout and user agent.
// Zero values fall back to the domain defaults.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = domain.DefaultHTTPTimeout
	}
	if userAgent == "" {
		userAgent = domain.DefaultUserAgent
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.http.Timeout
}

// GetJSON issues a GET to rawURL with query appended and decodes the body into out.
// Non-2xx responses return a *StatusError; undecodable bodies a *DecodeError.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, out any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, URL: u.String()}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{URL: u.String(), Err: err}
	}
	return nil
}
