// Package notification provides Notifier implementations for the
// post-transfer courtesy messages.
package notification

import (
	"log/slog"

	"github.com/paydesk/transfer-service/internal/domain"
)

// LogNotifier writes transfer notifications to the structured log.
// It is the default notifier when no webhook endpoint is configured.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier instance
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// NotifyAboutTransfer logs the message for the account holder.
func (n *LogNotifier) NotifyAboutTransfer(account *domain.Account, message string) error {
	slog.Info("transfer notification", "account_id", account.ID(), "message", message)
	return nil
}
