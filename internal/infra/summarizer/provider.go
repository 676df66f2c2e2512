package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"smart-summarizer/internal/engine"
)

// Provider resolves the configured external engine lazily on first use.
// Resolution happens once; a configuration error is cached and returned
// for every subsequent call, which keeps the fallback path cheap when no
// provider is configured.
type Provider struct {
	cfg  Config
	once sync.Once

	eng engine.ExternalEngine
	err error
}

// NewProvider creates a lazy external engine from cfg. The returned value
// itself implements engine.ExternalEngine and can be handed directly to
// the core engine.
func NewProvider(cfg Config) *Provider {
	return &Provider{cfg: cfg}
}

// Summarize resolves the provider on first call and delegates to it.
func (p *Provider) Summarize(ctx context.Context, input string, minWords, maxWords int) (string, error) {
	p.once.Do(p.resolve)
	if p.err != nil {
		return "", p.err
	}
	return p.eng.Summarize(ctx, input, minWords, maxWords)
}

func (p *Provider) resolve() {
	if err := p.cfg.Validate(); err != nil {
		p.err = fmt.Errorf("external engine config: %w", err)
		return
	}

	var inner engine.ExternalEngine
	switch p.cfg.Provider {
	case ProviderOpenAI:
		inner = NewOpenAI(p.cfg)
	case ProviderClaude:
		inner = NewClaude(p.cfg)
	default:
		p.err = fmt.Errorf("no external engine provider configured")
		return
	}

	slog.Info("external engine provider resolved",
		slog.String("provider", p.cfg.Provider),
		slog.Int("chunk_words", p.cfg.ChunkWords))

	p.eng = NewChunked(inner, p.cfg.ChunkWords)
}
