package engine

import (
	"regexp"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// Everything outside word characters, whitespace and sentence-safe
	// punctuation is stripped before tokenization.
	disallowedRE = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:'-]`)
)

// Preprocess normalizes raw input text: runs of whitespace collapse to a
// single space, the result is trimmed, and characters outside the
// sentence-safe set are removed. Empty input yields an empty string;
// downstream components treat that as the trivial-document case.
func Preprocess(text string) string {
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	return disallowedRE.ReplaceAllString(text, "")
}
