package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/paydesk/transfer-service/internal/domain"
)

// WebhookNotifier delivers transfer notifications as JSON POSTs to a
// configured endpoint. Delivery is bounded by a client timeout so a slow
// receiver cannot stall the caller.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

// NewWebhookNotifier creates a notifier posting to the given URL.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

type webhookPayload struct {
	AccountID string `json:"account_id"`
	Message   string `json:"message"`
}

// NotifyAboutTransfer posts the notification payload to the endpoint.
func (n *WebhookNotifier) NotifyAboutTransfer(account *domain.Account, message string) error {
	payload, err := json.Marshal(webhookPayload{
		AccountID: account.ID(),
		Message:   message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.URL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "TransferService-Webhook/1.0")

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
}
