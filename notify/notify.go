package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/randalmurphal/overrides"
)

// =============================================================================
// Notification Types
// =============================================================================

// EventType represents the type of pass event.
type EventType string

// Event type constants.
const (
	EventPassCompleted EventType = "pass_completed"
	EventPassFailed    EventType = "pass_failed"
)

// Severity constants for notifications.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Failure is one property whose value no write accepted.
type Failure struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Error    string `json:"error"`
}

// Event summarizes one resolution pass.
type Event struct {
	Type      EventType      `json:"type"`
	Pass      string         `json:"pass"`
	Prefixes  []string       `json:"prefixes"`
	Message   string         `json:"message"`
	Severity  string         `json:"severity"` // SeverityInfo, SeverityWarning, SeverityError
	Timestamp time.Time      `json:"timestamp"`
	Counts    map[string]int `json:"counts"`
	Failures  []Failure      `json:"failures,omitempty"`
}

// Summarize builds the event for a pass over prefixes. A pass with any
// failed write is EventPassFailed with warning severity.
func Summarize(prefixes []string, decisions []overrides.Decision) Event {
	e := Event{
		Type:      EventPassCompleted,
		Prefixes:  prefixes,
		Severity:  SeverityInfo,
		Timestamp: time.Now(),
		Counts:    make(map[string]int),
	}

	written := 0
	for _, d := range decisions {
		if e.Pass == "" {
			e.Pass = d.Pass
		}
		e.Counts[string(d.Outcome)]++
		if d.Written() {
			written++
		}
		if d.Outcome == overrides.OutcomeFailed {
			f := Failure{Property: d.QualifiedName, Value: d.Value}
			if d.Err != nil {
				f.Error = d.Err.Error()
			}
			e.Failures = append(e.Failures, f)
		}
	}

	e.Message = fmt.Sprintf("resolved %s: %d written, %d failed",
		strings.Join(prefixes, ", "), written, len(e.Failures))
	if len(e.Failures) > 0 {
		e.Type = EventPassFailed
		e.Severity = SeverityWarning
	}
	return e
}

// =============================================================================
// Notifier Interface
// =============================================================================

// Notifier sends notifications about resolution passes.
type Notifier interface {
	// Notify sends a notification. Implementations should be non-blocking
	// and handle errors gracefully (log, don't crash).
	Notify(ctx context.Context, event Event) error
}
