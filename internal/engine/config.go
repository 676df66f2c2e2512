package engine

// Config holds the tuning constants of the summarization engine.
// The default values are empirically chosen and should not be re-derived;
// they are exposed as configuration so deployments can adjust them without
// touching selector logic.
type Config struct {
	// MinTargetWords is the floor applied to every resolved word target.
	MinTargetWords int

	// MinCustomPercentage and MaxCustomPercentage bound user-supplied
	// custom percentages. Configured short/medium/long percentages are
	// operator-supplied and are trusted unclamped.
	MinCustomPercentage int
	MaxCustomPercentage int

	// DefaultExtractivePercentage is used when the lower-level extractive
	// summarizer is called without an explicit target.
	DefaultExtractivePercentage int

	// DefaultAbstractivePercentage is used when the lower-level abstractive
	// summarizer is called without an explicit target.
	DefaultAbstractivePercentage int

	// AbstractiveExpansion inflates percentage-derived abstractive targets.
	// Sentence compression shrinks the selected set afterwards, so the
	// selector aims slightly past the nominal target.
	AbstractiveExpansion float64

	// ExtractiveStopRatio stops extractive selection once the running word
	// count reaches this fraction of the target.
	ExtractiveStopRatio float64

	// AbstractiveStopRatio is the abstractive early-stop fraction. It is
	// looser than the extractive one because compression keeps shrinking
	// the chosen sentences.
	AbstractiveStopRatio float64

	// OvershootRatio triggers a single corrective re-selection pass when
	// the summary exceeds target*OvershootRatio words.
	OvershootRatio float64

	// LeadBoost is the score multiplier applied to the first LeadSentences
	// sentences of a document.
	LeadBoost     float64
	LeadSentences int

	// ExternalMinFactor and ExternalMaxFactor derive the (min, max) word
	// range handed to an external engine from the resolved target.
	ExternalMinFactor float64
	ExternalMaxFactor float64

	// ExternalMinFloor and ExternalMaxFloor are the absolute floors of the
	// external word range.
	ExternalMinFloor int
	ExternalMaxFloor int
}

// DefaultConfig returns the engine configuration with the standard tuning.
func DefaultConfig() Config {
	return Config{
		MinTargetWords:               10,
		MinCustomPercentage:          5,
		MaxCustomPercentage:          95,
		DefaultExtractivePercentage:  40,
		DefaultAbstractivePercentage: 50,
		AbstractiveExpansion:         1.2,
		ExtractiveStopRatio:          0.9,
		AbstractiveStopRatio:         0.85,
		OvershootRatio:               1.3,
		LeadBoost:                    1.2,
		LeadSentences:                3,
		ExternalMinFactor:            0.8,
		ExternalMaxFactor:            1.5,
		ExternalMinFloor:             10,
		ExternalMaxFloor:             30,
	}
}
