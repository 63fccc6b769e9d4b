package notify

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Delivery defaults for webhook notifiers.
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryWait  = 500 * time.Millisecond
)

// retryPolicy controls redelivery of a notification.
type retryPolicy struct {
	MaxRetries int
	RetryWait  time.Duration
}

// post sends body as JSON to url. Network errors, 429 and 5xx responses are
// retried with exponential backoff, honoring Retry-After. It returns the
// final status code.
func post(ctx context.Context, client *http.Client, policy retryPolicy, url string, body []byte, headers map[string]string) (int, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	attempts := policy.MaxRetries
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := range attempts {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return 0, err
		}
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := client.Do(req)
		last := attempt == attempts-1
		if err != nil {
			lastErr = err
			if last {
				break
			}
			if err := wait(ctx, policy.backoff(attempt)); err != nil {
				return 0, err
			}
			continue
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if shouldRetry(resp.StatusCode) && !last {
			if err := wait(ctx, policy.retryAfter(resp, attempt)); err != nil {
				return 0, err
			}
			continue
		}
		return resp.StatusCode, nil
	}

	return 0, lastErr
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	return p.RetryWait * time.Duration(1<<attempt)
}

// retryAfter prefers the server's Retry-After seconds over backoff.
func (p retryPolicy) retryAfter(resp *http.Response, attempt int) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return p.backoff(attempt)
}

func shouldRetry(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
