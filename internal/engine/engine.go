// Package engine implements the frequency-based text summarization engine.
// Given raw natural-language text and a length target it selects
// (extractive) or selects-and-compresses (abstractive) a subset of the
// original content approximating a target word count, deterministically
// and without external learned models. An optional external inference
// engine can be plugged in; on failure the engine falls back to its local
// abstractive path transparently.
//
// An Engine value is read-only after construction and safe for concurrent
// use. Each Summarize call builds its own document state and discards it
// on return.
package engine

import (
	"context"
	"log/slog"
	"math"

	"smart-summarizer/internal/utils/text"
)

// Engine is the summarization engine. The zero value is not usable;
// construct with New.
type Engine struct {
	cfg      Config
	splitter SentenceSplitter
	external ExternalEngine
	logger   *slog.Logger
	metrics  MetricsRecorder
}

// MetricsRecorder receives engine-level events. Abstracting the recorder
// keeps the engine testable without a live Prometheus registry.
type MetricsRecorder interface {
	// RecordOvershootCorrection is called once per corrective re-pass.
	RecordOvershootCorrection()

	// RecordExternalFallback is called when an external request is served
	// by the local abstractive path instead.
	RecordExternalFallback()
}

type noopMetrics struct{}

func (noopMetrics) RecordOvershootCorrection() {}
func (noopMetrics) RecordExternalFallback()    {}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig overrides the default tuning constants.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithSentenceSplitter injects a custom sentence boundary detector.
func WithSentenceSplitter(s SentenceSplitter) Option {
	return func(e *Engine) { e.splitter = s }
}

// WithExternalEngine attaches an external inference engine used for
// requests with Engine set to KindExternal.
func WithExternalEngine(ext ExternalEngine) Option {
	return func(e *Engine) { e.external = ext }
}

// WithLogger sets the structured logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetricsRecorder sets the engine metrics recorder. Defaults to a
// no-op recorder.
func WithMetricsRecorder(m MetricsRecorder) Option {
	return func(e *Engine) { e.metrics = m }
}

// New constructs an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:      DefaultConfig(),
		splitter: NewRuleSplitter(),
		logger:   slog.Default(),
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Summarize runs one summarization call: it resolves the target, scores
// and selects sentences according to the requested mode and engine, runs
// at most one corrective re-pass on overshoot, and computes the summary
// statistics. It never fails: unrecognized selectors default silently,
// external-engine failures fall back to the local abstractive path, and
// trivial input (≤1 sentence after preprocessing) is returned verbatim.
func (e *Engine) Summarize(ctx context.Context, req Request) Result {
	length := ParseLength(string(req.Length))
	mode := ParseMode(string(req.Mode))
	kind := ParseKind(string(req.Engine))

	settings := req.Settings
	if settings == (Settings{}) {
		settings = DefaultSettings()
	}

	doc := Preprocess(req.Text)
	totalWords := text.CountWords(doc)

	percentage := e.resolvePercentage(length, req.CustomPercentage, settings)
	target := e.targetWords(totalWords, percentage)

	// Summarization is a no-op below two sentences: empty, whitespace-only
	// and single-sentence documents come back verbatim for every
	// length/mode/engine combination.
	if len(e.splitter.Split(doc)) <= 1 {
		summaryType := TypeExtractive
		if mode == ModeAbstractive {
			summaryType = TypeAbstractive
		}
		return e.buildResult(doc, summaryType, length, percentage, totalWords)
	}

	e.logger.Debug("summarization target resolved",
		slog.String("length", string(length)),
		slog.String("mode", string(mode)),
		slog.String("engine", string(kind)),
		slog.Int("input_words", totalWords),
		slog.Int("target_percentage", percentage),
		slog.Int("target_words", target))

	summary, summaryType := e.dispatch(ctx, doc, mode, kind, percentage, target)

	// One corrective re-pass with an explicit word target when the first
	// pass overshoots. If the result is still over afterwards it is
	// returned as-is: overshoot is a quality issue, not a fault.
	summaryWords := text.CountWords(summary)
	if float64(summaryWords) > float64(target)*e.cfg.OvershootRatio {
		e.metrics.RecordOvershootCorrection()
		e.logger.Debug("summary overshoot, running corrective pass",
			slog.Int("summary_words", summaryWords),
			slog.Int("target_words", target))
		if mode == ModeAbstractive {
			summary = e.AbstractiveSummarize(doc, Target{Words: target})
		} else {
			summary = e.ExtractiveSummarize(doc, Target{Words: target})
		}
	}

	return e.buildResult(summary, summaryType, length, percentage, totalWords)
}

// buildResult computes the summary statistics for the final Result.
func (e *Engine) buildResult(summary, summaryType string, length Length, percentage, totalWords int) Result {
	summaryWords := text.CountWords(summary)
	actual := round1(float64(summaryWords) / float64(maxInt(totalWords, 1)) * 100)

	return Result{
		Summary:          summary,
		SummaryType:      summaryType,
		SummaryLength:    length,
		TargetPercentage: percentage,
		InputWordCount:   totalWords,
		SummaryWordCount: summaryWords,
		ActualPercentage: actual,
		CompressionRatio: round1(100 - actual),
	}
}

// dispatch routes the call to the selected path and reports which path
// actually produced the text.
func (e *Engine) dispatch(ctx context.Context, doc string, mode Mode, kind Kind, percentage, target int) (string, string) {
	if kind == KindExternal {
		if summary, ok := e.tryExternal(ctx, doc, target); ok {
			return summary, TypeExternal
		}
		// External engine absent or failed: degrade to the local
		// abstractive path. Callers only see the changed summary type.
		e.metrics.RecordExternalFallback()
		return e.AbstractiveSummarize(doc, Target{Percentage: percentage}), TypeAbstractive
	}

	if mode == ModeAbstractive {
		return e.AbstractiveSummarize(doc, Target{Percentage: percentage}), TypeAbstractive
	}
	// ModeBoth deliberately takes the extractive path.
	return e.ExtractiveSummarize(doc, Target{Percentage: percentage}), TypeExtractive
}

// tryExternal delegates to the configured external engine. Any error,
// including context timeout, is treated as "unavailable".
func (e *Engine) tryExternal(ctx context.Context, doc string, target int) (string, bool) {
	if e.external == nil {
		return "", false
	}

	minWords, maxWords := e.externalRange(target)
	summary, err := e.external.Summarize(ctx, doc, minWords, maxWords)
	if err != nil {
		e.logger.Warn("external engine unavailable, falling back to abstractive",
			slog.Int("target_words", target),
			slog.Any("error", err))
		return "", false
	}
	return summary, true
}

// ExtractiveSummarize selects the highest-scoring sentences of text until
// the resolved word target is met, preserving original document order in
// the output. Documents with at most one sentence are returned
// preprocessed but otherwise unchanged. When t carries neither an explicit
// word count nor a percentage, the configured default extractive
// percentage applies.
func (e *Engine) ExtractiveSummarize(input string, t Target) string {
	doc := Preprocess(input)
	sentences := e.splitter.Split(doc)
	if len(sentences) <= 1 {
		return doc
	}

	target := e.resolveLowLevelTarget(t, text.CountWords(doc), e.cfg.DefaultExtractivePercentage, 1)
	freq := BuildFrequencyTable(doc)
	scores := e.scoreSentences(sentences, freq)
	ranked := rankByScore(scores)

	picked := selectGreedy(sentences, ranked, target, e.cfg.ExtractiveStopRatio, nil)
	return joinInDocumentOrder(picked)
}

// AbstractiveSummarize selects sentences like the extractive path but
// charges each candidate's post-compression word count against the
// budget, emitting the compressed sentences. The early-stop threshold is
// looser than the extractive one since compression keeps shrinking the
// chosen set. Percentage-derived targets are inflated by the configured
// expansion factor for the same reason.
func (e *Engine) AbstractiveSummarize(input string, t Target) string {
	doc := Preprocess(input)
	sentences := e.splitter.Split(doc)
	if len(sentences) <= 1 {
		return doc
	}

	target := e.resolveLowLevelTarget(t, text.CountWords(doc), e.cfg.DefaultAbstractivePercentage, e.cfg.AbstractiveExpansion)
	freq := BuildFrequencyTable(doc)
	scores := e.scoreSentences(sentences, freq)
	ranked := rankByScore(scores)

	picked := selectGreedy(sentences, ranked, target, e.cfg.AbstractiveStopRatio, CompressSentence)
	return joinInDocumentOrder(picked)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
