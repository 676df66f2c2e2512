// Package summarizer provides external model summarization implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with
// reliability patterns, plus a chunking wrapper for long documents. All
// adapters implement the engine.ExternalEngine word-range contract.
package summarizer

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Supported provider names for EXTERNAL_ENGINE_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNone   = "none"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultMaxTokens  = 1024
	defaultChunkWords = 600

	minChunkWords = 100
	maxChunkWords = 5000
)

// Config holds configuration for the external summarization engine.
// Loaded from environment variables with fallback to defaults.
type Config struct {
	// Provider selects the adapter: "openai", "claude" or "none".
	Provider string

	// APIKey authenticates against the selected provider.
	APIKey string

	// Model is the provider model identifier. Empty selects the adapter's
	// default model.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single API call.
	Timeout time.Duration

	// ChunkWords is the word count per chunk when splitting long documents.
	ChunkWords int
}

// LoadConfig reads the external engine configuration from environment
// variables:
//   - EXTERNAL_ENGINE_PROVIDER: "openai", "claude" or "none" (default: none)
//   - EXTERNAL_ENGINE_API_KEY:  provider API key
//   - EXTERNAL_ENGINE_MODEL:    provider model override
//   - EXTERNAL_ENGINE_TIMEOUT:  per-call timeout as a Go duration
//   - EXTERNAL_ENGINE_CHUNK_WORDS: words per chunk (default: 600, range: 100-5000)
func LoadConfig() Config {
	cfg := Config{
		Provider:   ProviderNone,
		APIKey:     os.Getenv("EXTERNAL_ENGINE_API_KEY"),
		Model:      os.Getenv("EXTERNAL_ENGINE_MODEL"),
		MaxTokens:  defaultMaxTokens,
		Timeout:    defaultTimeout,
		ChunkWords: defaultChunkWords,
	}

	if provider := os.Getenv("EXTERNAL_ENGINE_PROVIDER"); provider != "" {
		cfg.Provider = provider
	}

	if timeout := os.Getenv("EXTERNAL_ENGINE_TIMEOUT"); timeout != "" {
		if val, err := time.ParseDuration(timeout); err == nil && val > 0 {
			cfg.Timeout = val
		}
	}

	if chunk := os.Getenv("EXTERNAL_ENGINE_CHUNK_WORDS"); chunk != "" {
		if val, err := strconv.Atoi(chunk); err == nil {
			cfg.ChunkWords = val
		}
	}

	return cfg
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderClaude:
		if c.APIKey == "" {
			return fmt.Errorf("provider %q requires EXTERNAL_ENGINE_API_KEY", c.Provider)
		}
	case ProviderNone:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}

	if c.ChunkWords < minChunkWords || c.ChunkWords > maxChunkWords {
		return fmt.Errorf("chunk words %d out of range [%d, %d]", c.ChunkWords, minChunkWords, maxChunkWords)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// buildPrompt constructs the word-range summarization prompt shared by the
// provider adapters.
func buildPrompt(minWords, maxWords int, text string) string {
	return fmt.Sprintf(
		"Summarize the following text in %d to %d words. Reply with the summary only, no preamble:\n\n%s",
		minWords, maxWords, text)
}
