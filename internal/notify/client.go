// Package notify delivers completed job results to an optional
// webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RetryableError marks a delivery failure worth retrying (transport
// error, 429 or 5xx).
type RetryableError struct {
	Status int
	Err    error
}

func (e *RetryableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("retryable notify error: %s", e.Err)
	}
	return fmt.Sprintf("retryable notify error: status %d", e.Status)
}

func (e *RetryableError) Unwrap() error { return e.Err }

// Client posts job results to the configured callback URL.
type Client struct {
	callbackURL string
	apiKey      string
	httpClient  *http.Client
}

func NewClient(callbackURL, apiKey string) *Client {
	return &Client{
		callbackURL: callbackURL,
		apiKey:      apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether a callback URL is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.callbackURL != ""
}

// PostResult delivers one completed job payload.
func (c *Client) PostResult(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.callbackURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &RetryableError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &RetryableError{Status: resp.StatusCode}
	default:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("post result: status %d: %s", resp.StatusCode, string(respBody))
	}
}

// Close releases any resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
