package notifier

import (
	"context"

	"go.uber.org/zap"
)

// ConsoleTransport writes deliveries to the structured log. It stands
// in for a real provider in demos and local runs; delivery always
// succeeds.
type ConsoleTransport struct {
	label  string
	logger *zap.Logger
}

// NewConsoleTransport creates a console transport with a label that
// identifies the simulated provider (e.g. "email", "sms")
func NewConsoleTransport(label string, logger *zap.Logger) *ConsoleTransport {
	return &ConsoleTransport{
		label:  label,
		logger: logger,
	}
}

// Deliver logs the message as delivered
func (t *ConsoleTransport) Deliver(ctx context.Context, recipient, message string) error {
	t.logger.Info("Notification delivered",
		zap.String("transport", t.label),
		zap.String("recipient", recipient),
		zap.String("message", message))
	return nil
}
