package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"smart-summarizer/internal/resilience/retry"
)

// SlackConfig contains configuration for Slack webhook notifications.
type SlackConfig struct {
	// Enabled indicates whether Slack notifications are enabled
	Enabled bool

	// WebhookURL is the Slack Incoming Webhook URL (includes the token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Slack API calls
	Timeout time.Duration
}

// SlackNotifier delivers notifications to Slack via Incoming Webhook.
// Slack webhooks allow 1 message per second, which the rate limiter
// enforces before every send.
type SlackNotifier struct {
	config      SlackConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
	retryConfig retry.Config
}

// NewSlackNotifier creates a new SlackNotifier with the given configuration.
func NewSlackNotifier(config SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(1.0, 1),
		retryConfig: retry.WebhookConfig(),
	}
}

// slackPayload is the JSON body posted to the webhook.
type slackPayload struct {
	Text string `json:"text"`
}

const maxMessageLength = 3000

// Notify implements the Notifier interface. It rate-limits, then posts the
// message with retry on transient failures.
func (s *SlackNotifier) Notify(ctx context.Context, title, message string) error {
	requestID := uuid.New().String()

	slog.Info("starting slack notification",
		slog.String("request_id", requestID),
		slog.String("title", title))

	if err := s.rateLimiter.Allow(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	err := retry.WithBackoff(ctx, s.retryConfig, func() error {
		return s.sendWebhookRequest(ctx, title, message)
	})
	if err != nil {
		slog.Error("slack notification failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("slack notification: %w", err)
	}

	slog.Info("slack notification delivered",
		slog.String("request_id", requestID))
	return nil
}

// sendWebhookRequest performs one webhook POST. Non-2xx statuses are
// returned as retry.HTTPError so the retry layer can classify them.
func (s *SlackNotifier) sendWebhookRequest(ctx context.Context, title, message string) error {
	text := fmt.Sprintf("*%s*\n%s", title, message)
	if len(text) > maxMessageLength {
		text = text[:maxMessageLength-3] + "..."
	}

	jsonData, err := json.Marshal(slackPayload{Text: text})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return &retry.HTTPError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("slack webhook: %s", string(body)),
	}
}
