package engine

import "math"

// Target carries an explicit goal for the lower-level summarizers.
// Words takes precedence over Percentage; when both are zero the
// summarizer applies its own default percentage.
type Target struct {
	Words      int
	Percentage int
}

// resolvePercentage turns a length selector into a concrete percentage.
// Custom percentages are clamped into the configured valid range and never
// rejected; a custom request without a percentage falls back to medium.
// Configured short/medium/long percentages are trusted as-is.
// Unrecognized selectors defaulted to medium by ParseLength land here too.
func (e *Engine) resolvePercentage(length Length, customPercentage int, settings Settings) int {
	switch length {
	case LengthCustom:
		if customPercentage == 0 {
			return settings.MediumPercentage
		}
		return clamp(customPercentage, e.cfg.MinCustomPercentage, e.cfg.MaxCustomPercentage)
	case LengthShort:
		return settings.ShortPercentage
	case LengthLong:
		return settings.LongPercentage
	default:
		return settings.MediumPercentage
	}
}

// targetWords converts a percentage of the input length into a word
// target, floored at cfg.MinTargetWords.
func (e *Engine) targetWords(totalWords, percentage int) int {
	target := int(math.Round(float64(totalWords) * float64(percentage) / 100))
	if target < e.cfg.MinTargetWords {
		return e.cfg.MinTargetWords
	}
	return target
}

// resolveLowLevelTarget resolves the word target for a direct call to one
// of the lower-level summarizers. The expansion factor inflates
// percentage-derived targets only; explicit word targets are exact.
func (e *Engine) resolveLowLevelTarget(t Target, totalWords, defaultPercentage int, expansion float64) int {
	switch {
	case t.Words > 0:
		return t.Words
	case t.Percentage > 0:
		target := int(math.Round(float64(totalWords) * float64(t.Percentage) / 100 * expansion))
		if target < e.cfg.MinTargetWords {
			return e.cfg.MinTargetWords
		}
		return target
	default:
		return e.targetWords(totalWords, defaultPercentage)
	}
}

// externalRange derives the (min, max) word bounds handed to an external
// engine from the resolved target.
func (e *Engine) externalRange(target int) (minWords, maxWords int) {
	minWords = int(math.Round(float64(target) * e.cfg.ExternalMinFactor))
	if minWords < e.cfg.ExternalMinFloor {
		minWords = e.cfg.ExternalMinFloor
	}
	maxWords = int(math.Round(float64(target) * e.cfg.ExternalMaxFactor))
	if maxWords < e.cfg.ExternalMaxFloor {
		maxWords = e.cfg.ExternalMaxFloor
	}
	return minWords, maxWords
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
