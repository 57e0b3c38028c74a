// Package notify provides notification services for commit engine events.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: Notification event with type, message, and metadata
//   - EventType: Type of event (commit_completed, commit_failed)
//
// Implementations:
//   - LogNotifier: Logs notifications (the default foreground surface)
//   - WebhookNotifier: Sends notifications to generic webhooks
//   - MultiNotifier: Combines multiple notifiers
//   - NopNotifier: No-op notifier (for testing)
//
// Example usage:
//
//	notifier := notify.NewMultiNotifier(
//	    notify.NewLogNotifier(logger),
//	    notify.NewWebhookNotifier(webhookURL, nil),
//	)
//	err := notifier.Notify(ctx, notify.Event{
//	    Type:    notify.EventCommitCompleted,
//	    Message: "feat(auth): add token validation",
//	})
package notify
