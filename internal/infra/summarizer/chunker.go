package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"smart-summarizer/internal/engine"
)

// maxConcurrentChunks bounds the number of provider calls in flight for
// one document.
const maxConcurrentChunks = 4

// Chunked wraps an ExternalEngine and splits long documents into
// fixed-size word chunks, summarizing them concurrently and joining the
// chunk summaries in document order. Chunks whose provider call fails are
// dropped; the call only errors when every chunk fails.
type Chunked struct {
	inner      engine.ExternalEngine
	chunkWords int
}

// NewChunked wraps inner with chunking at chunkWords words per chunk.
func NewChunked(inner engine.ExternalEngine, chunkWords int) *Chunked {
	if chunkWords <= 0 {
		chunkWords = defaultChunkWords
	}
	return &Chunked{inner: inner, chunkWords: chunkWords}
}

// Summarize delegates short documents directly to the wrapped engine.
// Longer documents are split into positional word chunks; each chunk gets
// an equal share of the requested word range.
func (c *Chunked) Summarize(ctx context.Context, input string, minWords, maxWords int) (string, error) {
	words := strings.Fields(input)
	if len(words) <= c.chunkWords {
		return c.inner.Summarize(ctx, input, minWords, maxWords)
	}

	chunks := splitWords(words, c.chunkWords)
	chunkMin := minWords / len(chunks)
	chunkMax := maxWords / len(chunks)
	if chunkMin < 1 {
		chunkMin = 1
	}
	if chunkMax < chunkMin {
		chunkMax = chunkMin
	}

	slog.Debug("summarizing document in chunks",
		slog.Int("input_words", len(words)),
		slog.Int("chunks", len(chunks)),
		slog.Int("chunk_min_words", chunkMin),
		slog.Int("chunk_max_words", chunkMax))

	summaries := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChunks)

	for i, chunk := range chunks {
		g.Go(func() error {
			summary, err := c.inner.Summarize(gctx, chunk, chunkMin, chunkMax)
			if err != nil {
				// Dropped chunks degrade coverage, not the whole call.
				slog.Warn("chunk summarization failed, dropping chunk",
					slog.Int("chunk", i),
					slog.Any("error", err))
				return nil
			}
			summaries[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("chunked summarize: %w", err)
	}

	kept := make([]string, 0, len(summaries))
	for _, s := range summaries {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, strings.TrimSpace(s))
		}
	}
	if len(kept) == 0 {
		return "", fmt.Errorf("chunked summarize: all %d chunks failed", len(chunks))
	}

	return strings.Join(kept, " "), nil
}

// splitWords partitions words into consecutive chunks of at most size
// words, rejoined as strings.
func splitWords(words []string, size int) []string {
	chunks := make([]string, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
