package notification

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/transfer-service/internal/domain"
)

func TestWebhookNotifier_Delivers(t *testing.T) {
	var received webhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	acc, err := domain.NewAccount("acc-1", decimal.NewFromInt(100))
	require.NoError(t, err)

	notifier := NewWebhookNotifier(server.URL)
	err = notifier.NotifyAboutTransfer(acc, "Amount 50 received from account acc-2")

	require.NoError(t, err)
	assert.Equal(t, "acc-1", received.AccountID)
	assert.Contains(t, received.Message, "acc-2")
}

func TestWebhookNotifier_EndpointError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	acc, err := domain.NewAccount("acc-1", decimal.NewFromInt(100))
	require.NoError(t, err)

	notifier := NewWebhookNotifier(server.URL)
	err = notifier.NotifyAboutTransfer(acc, "hello")

	assert.Error(t, err)
}
