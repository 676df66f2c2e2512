package engine

import "context"

// Length selects how long the summary should be relative to the input.
type Length string

// Supported length selectors.
const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
	LengthCustom Length = "custom"
)

// ParseLength maps a raw selector to a Length. Unrecognized values fall
// back to medium; callers never see a bad-selector error.
func ParseLength(s string) Length {
	switch Length(s) {
	case LengthShort, LengthMedium, LengthLong, LengthCustom:
		return Length(s)
	default:
		return LengthMedium
	}
}

// Mode selects the summarization algorithm.
type Mode string

// Supported summarization modes. ModeBoth is treated as extractive:
// the extractive path is the more reliable of the two, and that
// preference is deliberate policy, not a missing feature.
const (
	ModeExtractive  Mode = "extractive"
	ModeAbstractive Mode = "abstractive"
	ModeBoth        Mode = "both"
)

// ParseMode maps a raw selector to a Mode, defaulting to extractive.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeExtractive, ModeAbstractive, ModeBoth:
		return Mode(s)
	default:
		return ModeExtractive
	}
}

// Kind selects which engine produces the summary.
type Kind string

// Supported engine kinds. KindExternal delegates to a configured external
// inference engine and silently falls back to the local abstractive path
// when that engine is unavailable.
const (
	KindLocal    Kind = "local"
	KindExternal Kind = "external"
)

// ParseKind maps a raw selector to a Kind, defaulting to local.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindLocal, KindExternal:
		return Kind(s)
	default:
		return KindLocal
	}
}

// Settings carries the operator-configured length percentages consumed by
// the target resolver. Values are integer percentages of the input length.
type Settings struct {
	ShortPercentage  int
	MediumPercentage int
	LongPercentage   int
}

// DefaultSettings returns the standard 20/40/60 length percentages.
func DefaultSettings() Settings {
	return Settings{
		ShortPercentage:  20,
		MediumPercentage: 40,
		LongPercentage:   60,
	}
}

// Request describes one summarization call.
type Request struct {
	// Text is the raw input document.
	Text string

	// Length, Mode and Engine are resolved with silent defaults; see
	// ParseLength, ParseMode and ParseKind.
	Length Length
	Mode   Mode
	Engine Kind

	// CustomPercentage is only meaningful when Length is LengthCustom.
	// It is clamped into the configured valid range, never rejected.
	CustomPercentage int

	// Settings supplies the configured length percentages. The zero value
	// is replaced by DefaultSettings.
	Settings Settings
}

// Result is the outcome of one summarization call.
type Result struct {
	Summary          string  `json:"summary"`
	SummaryType      string  `json:"summary_type"`
	SummaryLength    Length  `json:"summary_length"`
	TargetPercentage int     `json:"target_percentage"`
	InputWordCount   int     `json:"input_word_count"`
	SummaryWordCount int     `json:"summary_word_count"`
	ActualPercentage float64 `json:"actual_percentage"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// Summary type labels reported in Result.SummaryType. The label reflects
// the path that actually produced the text: a failed external call that
// fell back locally reports TypeAbstractive, not TypeExternal.
const (
	TypeExtractive  = "extractive"
	TypeAbstractive = "abstractive"
	TypeExternal    = "external"
)

// ExternalEngine is the boundary contract for an external inference engine
// (for example a hosted sequence-to-sequence model). Implementations must
// honor ctx cancellation; a slow external model must not stall the caller
// beyond its deadline. Any error is treated as "unavailable" and triggers
// local fallback.
type ExternalEngine interface {
	Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error)
}

// SentenceSplitter detects sentence boundaries. The exact boundary
// algorithm is a pluggable capability; the engine only requires an
// ordered, non-overlapping split of the input.
type SentenceSplitter interface {
	Split(text string) []string
}
