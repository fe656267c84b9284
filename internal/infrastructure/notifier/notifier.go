// Package notifier provides the stand-in delivery channel for invoice
// notifications. Real delivery is out of scope; the log notifier makes the
// fan-out observable without reaching any external system.
package notifier

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smartmoney/walletd/internal/usecase"
)

// LogNotifier writes every notification to the service log.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification. It never fails.
func (n *LogNotifier) Send(ctx context.Context, notification usecase.Notification) error {
	n.logger.Info().
		Str("recipient", notification.Recipient).
		Str("subject", notification.Subject).
		Str("body", notification.Body).
		Msg("invoice notification")

	return nil
}
