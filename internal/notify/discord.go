package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DiscordSender delivers messages to one Discord channel via a webhook.
type DiscordSender struct {
	webhookURL string
	label      string
	client     *http.Client
}

// NewDiscordSender creates a DiscordSender for the given webhook URL. label is
// a short identifier used in logs instead of the full (secret-bearing) URL.
func NewDiscordSender(webhookURL, label string) *DiscordSender {
	return &DiscordSender{
		webhookURL: webhookURL,
		label:      label,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the message to the Discord webhook.
func (d *DiscordSender) Send(ctx context.Context, message string) error {
	payload := map[string]string{
		"content": message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: send request: %w", err)
	}
	defer resp.Body.Close()

	// Discord returns 204 No Content on success.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("discord: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// Name returns the target identifier.
func (d *DiscordSender) Name() string {
	return "discord:" + d.label
}
