package notify

import (
	"context"
	"errors"
	"log/slog"
)

// =============================================================================
// MultiNotifier
// =============================================================================

// MultiNotifier sends notifications to multiple notifiers.
type MultiNotifier struct {
	Notifiers []Notifier
	Logger    *slog.Logger
}

// NewMultiNotifier creates a notifier that fans out to multiple notifiers.
// Nil notifiers are dropped. Errors from individual notifiers are logged but
// don't stop other notifications.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	n := &MultiNotifier{Logger: slog.Default()}
	for _, notifier := range notifiers {
		if notifier != nil {
			n.Notifiers = append(n.Notifiers, notifier)
		}
	}
	return n
}

// Notify implements Notifier. It returns every notifier error joined.
func (n *MultiNotifier) Notify(ctx context.Context, event Event) error {
	var errs []error
	for _, notifier := range n.Notifiers {
		if err := notifier.Notify(ctx, event); err != nil {
			errs = append(errs, err)
			if n.Logger != nil {
				n.Logger.Warn("notifier failed",
					"error", err,
					"event_type", event.Type,
					"pass", event.Pass,
				)
			}
		}
	}
	return errors.Join(errs...)
}

// =============================================================================
// NopNotifier
// =============================================================================

// NopNotifier is a no-op notifier that discards all notifications.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(ctx context.Context, event Event) error {
	return nil
}
