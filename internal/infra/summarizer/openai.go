package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"smart-summarizer/internal/observability/metrics"
	"smart-summarizer/internal/resilience/circuitbreaker"
	"smart-summarizer/internal/resilience/retry"
	"smart-summarizer/internal/utils/text"
)

// OpenAI implements engine.ExternalEngine using OpenAI's chat completion
// API, with circuit breaker and retry protection.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder MetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer from the given configuration.
func NewOpenAI(cfg Config) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}

	slog.Info("initialized openai summarizer",
		slog.String("model", cfg.Model),
		slog.Duration("timeout", cfg.Timeout))

	return &OpenAI{
		client:          openai.NewClient(cfg.APIKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.ModelAPIConfig(),
		config:          cfg,
		metricsRecorder: NewPrometheusMetrics(),
	}
}

// Summarize generates a summary of text within the requested word range.
func (o *OpenAI) Summarize(ctx context.Context, input string, minWords, maxWords int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSummarize(ctx, input, minWords, maxWords)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, input string, minWords, maxWords int) (string, error) {
	prompt := buildPrompt(minWords, maxWords, input)

	slog.InfoContext(ctx, "starting external summarization",
		slog.String("provider", ProviderOpenAI),
		slog.Int("input_words", text.CountWords(input)),
		slog.Int("min_words", minWords),
		slog.Int("max_words", maxWords))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.RecordExternalModelCall(ProviderOpenAI, false, duration)
		slog.ErrorContext(ctx, "external summarization failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		metrics.RecordExternalModelCall(ProviderOpenAI, false, duration)
		slog.ErrorContext(ctx, "openai api returned empty response",
			slog.Duration("duration", duration))
		return "", fmt.Errorf("openai api returned empty response")
	}

	summary := resp.Choices[0].Message.Content
	summaryWords := text.CountWords(summary)
	withinRange := summaryWords >= minWords && summaryWords <= maxWords

	metrics.RecordExternalModelCall(ProviderOpenAI, true, duration)

	slog.InfoContext(ctx, "external summarization completed",
		slog.Int("summary_words", summaryWords),
		slog.Bool("within_range", withinRange),
		slog.Duration("duration", duration))

	if !withinRange {
		slog.WarnContext(ctx, "summary outside requested word range",
			slog.Int("summary_words", summaryWords),
			slog.Int("min_words", minWords),
			slog.Int("max_words", maxWords))
	}

	o.metricsRecorder.RecordWords(summaryWords)
	o.metricsRecorder.RecordDuration(duration)
	o.metricsRecorder.RecordCompliance(withinRange)
	if !withinRange {
		o.metricsRecorder.RecordRangeMiss()
	}

	return summary, nil
}
