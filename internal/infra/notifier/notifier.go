// Package notifier provides abstraction for delivering notifications about
// completed summaries and generated reports. The Notifier interface allows
// different delivery mechanisms (Slack webhook, no-op) to be used
// interchangeably through dependency injection.
package notifier

import "context"

// Notifier delivers a user-facing notification message.
// Implementations handle rate limiting, retries, and error logging
// internally and respect context cancellation.
type Notifier interface {
	// Notify delivers one notification with a short title and body.
	// Returns a non-nil error only after all retry attempts failed.
	Notify(ctx context.Context, title, message string) error
}
