// Package text provides utilities for text processing and analysis.
// It includes reusable counting helpers shared by the summarization engine,
// the HTTP handlers, and the reporting code so that every component measures
// input and summary sizes the same way.
package text

import "strings"

// CountWords counts whitespace-separated words in the given text.
// Consecutive whitespace is treated as a single separator, so
// CountWords("a  b\n c") returns 3. An empty or all-whitespace string
// counts as zero words.
//
// All word budgets in the summarization engine (targets, overshoot
// detection, chunk boundaries) are expressed in terms of this count.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountRunes counts the number of Unicode characters (runes) in the given text.
// This correctly handles multi-byte characters by counting runes instead of bytes.
//
// Examples:
//
//	CountRunes("hello")    // returns 5
//	CountRunes("héllo")    // returns 5 (not 6)
//	CountRunes("")         // returns 0
func CountRunes(text string) int {
	return len([]rune(text))
}
