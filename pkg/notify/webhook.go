// Package notify delivers escalation notifications to external channels.
// Delivery is fail-open: the notification row persisted with the session is
// the durable record, and a sink failure only costs immediacy.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/meridianhealth/intake/pkg/models"
)

// Config holds the parameters needed to construct a WebhookSink.
type Config struct {
	// WebhookURL receives one JSON POST per notification. Empty disables
	// the sink.
	WebhookURL string
	// Timeout bounds one delivery attempt. Zero means 10s.
	Timeout time.Duration
}

// WebhookSink posts escalation notifications to a paging webhook. It
// implements escalate.Sink.
type WebhookSink struct {
	url     string
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewWebhookSink creates the sink. Returns nil when no webhook is
// configured; a nil sink must not be registered with the escalator.
func NewWebhookSink(cfg Config) *WebhookSink {
	if cfg.WebhookURL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookSink{
		url:     cfg.WebhookURL,
		client:  &http.Client{},
		timeout: timeout,
		logger:  slog.Default().With("component", "webhook-sink"),
	}
}

// payload is the webhook wire format.
type payload struct {
	AdminEmail   string `json:"admin_email"`
	SessionToken string `json:"session_token"`
	Priority     string `json:"priority"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	CreatedAt    string `json:"created_at"`
}

// Deliver implements escalate.Sink.
func (s *WebhookSink) Deliver(ctx context.Context, admin models.AdminUser, n models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := json.Marshal(payload{
		AdminEmail:   admin.Email,
		SessionToken: n.SessionToken,
		Priority:     string(n.Priority),
		Title:        n.Title,
		Body:         n.Body,
		CreatedAt:    n.CreatedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	s.logger.Debug("notification delivered",
		"admin_user_id", admin.ID, "notification_id", n.ID)
	return nil
}
