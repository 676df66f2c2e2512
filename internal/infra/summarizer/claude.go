package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"smart-summarizer/internal/observability/metrics"
	"smart-summarizer/internal/resilience/circuitbreaker"
	"smart-summarizer/internal/resilience/retry"
	"smart-summarizer/internal/utils/text"
)

// Claude implements engine.ExternalEngine using Anthropic's Claude API.
// It wraps every call in circuit breaker and retry logic and records the
// outcome through the metrics recorder.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder MetricsRecorder
}

// NewClaude creates a new Claude summarizer from the given configuration.
func NewClaude(cfg Config) *Claude {
	model := cfg.Model
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_5_20250929)
	}
	cfg.Model = model

	slog.Info("initialized claude summarizer",
		slog.String("model", model),
		slog.Duration("timeout", cfg.Timeout))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.ModelAPIConfig(),
		config:          cfg,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Summarize generates a summary of text within the requested word range.
func (c *Claude) Summarize(ctx context.Context, input string, minWords, maxWords int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSummarize(ctx, input, minWords, maxWords)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("claude summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, input string, minWords, maxWords int) (string, error) {
	requestID := uuid.New().String()
	prompt := buildPrompt(minWords, maxWords, input)

	slog.InfoContext(ctx, "starting external summarization",
		slog.String("request_id", requestID),
		slog.String("provider", ProviderClaude),
		slog.Int("input_words", text.CountWords(input)),
		slog.Int("min_words", minWords),
		slog.Int("max_words", maxWords))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.RecordExternalModelCall(ProviderClaude, false, duration)
		slog.ErrorContext(ctx, "external summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		metrics.RecordExternalModelCall(ProviderClaude, false, duration)
		slog.ErrorContext(ctx, "claude api returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		metrics.RecordExternalModelCall(ProviderClaude, false, duration)
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	summary := textBlock.Text
	summaryWords := text.CountWords(summary)
	withinRange := summaryWords >= minWords && summaryWords <= maxWords

	metrics.RecordExternalModelCall(ProviderClaude, true, duration)

	slog.InfoContext(ctx, "external summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_words", summaryWords),
		slog.Bool("within_range", withinRange),
		slog.Duration("duration", duration))

	if !withinRange {
		slog.WarnContext(ctx, "summary outside requested word range",
			slog.String("request_id", requestID),
			slog.Int("summary_words", summaryWords),
			slog.Int("min_words", minWords),
			slog.Int("max_words", maxWords))
	}

	c.metricsRecorder.RecordWords(summaryWords)
	c.metricsRecorder.RecordDuration(duration)
	c.metricsRecorder.RecordCompliance(withinRange)
	if !withinRange {
		c.metricsRecorder.RecordRangeMiss()
	}

	return summary, nil
}
