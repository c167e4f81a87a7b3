package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded digests. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards digests with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendDailyDigest logs and discards a digest.
func (n *NoOpNotifier) SendDailyDigest(_ context.Context, digest *DigestPayload) error {
	n.log.Debug("digest discarded (no backend configured)",
		"date", digest.Date,
		"total_sold", digest.TotalSold,
	)
	return nil
}
