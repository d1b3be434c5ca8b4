package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"delivery_auction/internal/usecase/interfaces"
)

var ErrMissingNotificationWebhookURL = errors.New("missing NOTIFICATION_WEBHOOK_URL")

const notifyRequestTimeout = 3 * time.Second

// WebhookNotifier posts auction lifecycle events to the marketplace's
// notification dispatcher, which fans them out to requesters and couriers.
//
// Delivery is best-effort: the caller logs and drops every error, so this
// client keeps a short timeout and never retries.
type WebhookNotifier struct {
	url      string
	client   *http.Client
	mockMode bool
}

var _ interfaces.INotificationService = (*WebhookNotifier)(nil)

func NewWebhookNotifier(webhookURL string) (*WebhookNotifier, error) {
	if isNotificationMockEnabled() {
		log.Printf("[notification][gateway] mock mode enabled")
		return &WebhookNotifier{mockMode: true}, nil
	}

	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		log.Printf("[notification][gateway] missing NOTIFICATION_WEBHOOK_URL")
		return nil, ErrMissingNotificationWebhookURL
	}

	return &WebhookNotifier{
		url:    webhookURL,
		client: &http.Client{Timeout: notifyRequestTimeout},
	}, nil
}

type eventEnvelope struct {
	EventType string         `json:"event_type"`
	AuctionID string         `json:"auction_id"`
	Payload   map[string]any `json:"payload,omitempty"`
	SentAt    string         `json:"sent_at"`
}

func (n *WebhookNotifier) Notify(ctx context.Context, eventType string, auctionID string, payload map[string]any) error {
	if n != nil && n.mockMode {
		log.Printf("[notification][gateway] mock notify event=%s auction_id=%s", eventType, auctionID)
		return nil
	}
	if n == nil || n.client == nil {
		return ErrMissingNotificationWebhookURL
	}

	body, err := json.Marshal(eventEnvelope{
		EventType: eventType,
		AuctionID: auctionID,
		Payload:   payload,
		SentAt:    time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}
	log.Printf("[notification][gateway] notify success event=%s auction_id=%s", eventType, auctionID)
	return nil
}

func isNotificationMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
