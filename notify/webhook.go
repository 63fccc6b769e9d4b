package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// =============================================================================
// WebhookNotifier
// =============================================================================

// WebhookNotifier posts events as JSON to a generic HTTP webhook. The event
// type is also sent in the X-Overrides-Event header.
type WebhookNotifier struct {
	URL        string
	Headers    map[string]string
	Client     *http.Client
	MaxRetries int
	RetryWait  time.Duration
}

// NewWebhookNotifier creates a webhook notifier.
func NewWebhookNotifier(url string, headers map[string]string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:        url,
		Headers:    headers,
		Client:     &http.Client{Timeout: DefaultTimeout},
		MaxRetries: DefaultMaxRetries,
		RetryWait:  DefaultRetryWait,
	}
}

// Notify implements Notifier.
func (n *WebhookNotifier) Notify(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	headers := map[string]string{"X-Overrides-Event": string(event.Type)}
	for k, v := range n.Headers {
		headers[k] = v
	}

	status, err := post(ctx, n.Client, retryPolicy{n.MaxRetries, n.RetryWait}, n.URL, body, headers)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	if status >= 400 {
		return fmt.Errorf("webhook %s returned %d", n.URL, status)
	}

	return nil
}
