package engine

import (
	"sort"
	"strings"

	"smart-summarizer/internal/utils/text"
)

// pickedSentence is a sentence accepted by the greedy selector, tagged
// with its original document position.
type pickedSentence struct {
	index int
	text  string
}

// selectGreedy walks the ranked index list accumulating sentences under a
// word budget. A candidate is accepted when it fits the remaining budget,
// or unconditionally when nothing has been selected yet, so every
// non-trivial document yields at least one sentence. Selection stops early
// once the running total reaches stopRatio of the target. The transform is
// applied to each candidate before its word count is measured, which is
// how the abstractive path charges compressed lengths against the budget.
func selectGreedy(sentences []string, ranked []int, target int, stopRatio float64, transform func(string) string) []pickedSentence {
	var picked []pickedSentence
	running := 0

	for _, idx := range ranked {
		candidate := sentences[idx]
		if transform != nil {
			candidate = transform(candidate)
		}
		words := text.CountWords(candidate)

		if running+words <= target || len(picked) == 0 {
			picked = append(picked, pickedSentence{index: idx, text: candidate})
			running += words

			if float64(running) >= float64(target)*stopRatio {
				break
			}
		}
	}
	return picked
}

// joinInDocumentOrder reorders the picked sentences by ascending original
// index and joins them with single spaces. The output always reads in
// document order regardless of selection order.
func joinInDocumentOrder(picked []pickedSentence) string {
	sort.Slice(picked, func(a, b int) bool {
		return picked[a].index < picked[b].index
	})

	parts := make([]string, len(picked))
	for i, p := range picked {
		parts[i] = p.text
	}
	return strings.Join(parts, " ")
}
