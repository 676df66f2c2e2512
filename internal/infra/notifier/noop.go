package notifier

import (
	"context"
	"log/slog"
)

// NoOp is a notifier that logs and discards notifications. Used when no
// delivery channel is configured.
type NoOp struct{}

// NewNoOp creates a new NoOp notifier.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Notify logs the notification at debug level and succeeds.
func (n *NoOp) Notify(_ context.Context, title, _ string) error {
	slog.Debug("notification discarded, no notifier configured",
		slog.String("title", title))
	return nil
}
