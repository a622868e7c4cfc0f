// internal/common/httpclient/client.go
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a JSON HTTP client with per-request timeout and retry with
// exponential backoff for idempotent calls.
type Client struct {
	httpClient *http.Client
	retries    int
	backoff    time.Duration
}

func New(timeout time.Duration, retries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retries: retries,
		backoff: 500 * time.Millisecond,
	}
}

// PostJSON posts body as JSON to url and decodes the response into out.
// Transport errors and 5xx responses are retried; 4xx responses are not.
func (c *Client) PostJSON(ctx context.Context, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	delay := c.backoff

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		lastErr = c.postOnce(ctx, url, payload, out)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("request to %s failed after %d attempts: %w", url, c.retries+1, lastErr)
}

func (c *Client) postOnce(ctx context.Context, url string, payload []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &statusError{code: resp.StatusCode}
	}
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type transportError struct{ err error }

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

type statusError struct{ code int }

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.code)
}

func isRetryable(err error) bool {
	switch err.(type) {
	case *transportError, *statusError:
		return true
	default:
		return false
	}
}
