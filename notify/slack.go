package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// SlackNotifier
// =============================================================================

// SlackNotifier sends notifications to a Slack webhook.
type SlackNotifier struct {
	WebhookURL string
	Channel    string
	Username   string
	Client     *http.Client
	MaxRetries int
	RetryWait  time.Duration
}

// NewSlackNotifier creates a Slack webhook notifier.
func NewSlackNotifier(webhookURL string, opts ...SlackOption) *SlackNotifier {
	n := &SlackNotifier{
		WebhookURL: webhookURL,
		Username:   "overrides",
		Client:     &http.Client{Timeout: DefaultTimeout},
		MaxRetries: DefaultMaxRetries,
		RetryWait:  DefaultRetryWait,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SlackOption configures SlackNotifier.
type SlackOption func(*SlackNotifier)

// WithSlackChannel sets the channel to post to.
func WithSlackChannel(channel string) SlackOption {
	return func(n *SlackNotifier) { n.Channel = channel }
}

// WithSlackUsername sets the bot username.
func WithSlackUsername(username string) SlackOption {
	return func(n *SlackNotifier) { n.Username = username }
}

// Notify implements Notifier.
func (n *SlackNotifier) Notify(ctx context.Context, event Event) error {
	payload := slackPayload{
		Username: n.Username,
		Attachments: []slackAttachment{
			{
				Color:     n.colorForSeverity(event.Severity),
				Title:     fmt.Sprintf("%s %s", n.emojiForEvent(event), event.Type),
				Text:      event.Message,
				Footer:    fmt.Sprintf("Pass: %s | Prefixes: %s", event.Pass, strings.Join(event.Prefixes, ", ")),
				Timestamp: event.Timestamp.Unix(),
				Fields:    n.fields(event),
			},
		},
	}

	if n.Channel != "" {
		payload.Channel = n.Channel
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	status, err := post(ctx, n.Client, retryPolicy{n.MaxRetries, n.RetryWait}, n.WebhookURL, body, nil)
	if err != nil {
		return fmt.Errorf("send slack message: %w", err)
	}
	if status >= 400 {
		return fmt.Errorf("slack returned %d", status)
	}

	return nil
}

func (n *SlackNotifier) emojiForEvent(event Event) string {
	switch event.Type {
	case EventPassCompleted:
		return "\u2705"
	case EventPassFailed:
		return "\u26a0\ufe0f"
	default:
		return "\U0001f4e2"
	}
}

func (n *SlackNotifier) colorForSeverity(severity string) string {
	switch severity {
	case SeverityError:
		return "danger"
	case SeverityWarning:
		return "warning"
	default:
		return "good"
	}
}

// fields lists outcome counts in sorted order, then one field per failure.
func (n *SlackNotifier) fields(event Event) []slackField {
	outcomes := make([]string, 0, len(event.Counts))
	for outcome := range event.Counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)

	var fields []slackField
	for _, outcome := range outcomes {
		fields = append(fields, slackField{
			Title: outcome,
			Value: strconv.Itoa(event.Counts[outcome]),
			Short: true,
		})
	}
	for _, f := range event.Failures {
		fields = append(fields, slackField{
			Title: f.Property,
			Value: fmt.Sprintf("%q: %s", f.Value, f.Error),
		})
	}
	return fields
}

// Slack webhook payload types
type slackPayload struct {
	Username    string            `json:"username,omitempty"`
	Channel     string            `json:"channel,omitempty"`
	Attachments []slackAttachment `json:"attachments"`
}

type slackAttachment struct {
	Color     string       `json:"color,omitempty"`
	Title     string       `json:"title"`
	Text      string       `json:"text"`
	Footer    string       `json:"footer,omitempty"`
	Timestamp int64        `json:"ts,omitempty"`
	Fields    []slackField `json:"fields,omitempty"`
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}
