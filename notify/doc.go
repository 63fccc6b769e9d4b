// Package notify reports the outcome of resolution passes.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: Summary of one pass with outcome counts and failures
//   - Summarize: Builds an Event from a pass's decisions
//
// Implementations:
//   - SlackNotifier: Sends notifications to Slack webhooks
//   - WebhookNotifier: Sends notifications to generic webhooks
//   - LogNotifier: Logs notifications
//   - MultiNotifier: Combines multiple notifiers
//   - NopNotifier: No-op notifier (for testing)
//
// Example usage:
//
//	log := &overrides.DecisionLog{}
//	r.Observer = log
//	r.Apply(t, env.OS(), "db")
//
//	notifier := notify.NewSlackNotifier(webhookURL,
//	    notify.WithSlackChannel("#deploys"),
//	)
//	err := notifier.Notify(ctx, notify.Summarize([]string{"db"}, log.Decisions()))
package notify
