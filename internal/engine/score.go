package engine

import "sort"

// scoreSentences assigns each sentence its mean content-word frequency.
// Sentences without content words score zero. The first cfg.LeadSentences
// sentences receive a cfg.LeadBoost multiplier: document openings tend to
// carry key information.
func (e *Engine) scoreSentences(sentences []string, freq FrequencyTable) []float64 {
	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		words := ContentWords(sentence)
		if len(words) == 0 {
			continue
		}

		sum := 0
		for _, w := range words {
			sum += freq[w]
		}
		scores[i] = float64(sum) / float64(len(words))

		if i < e.cfg.LeadSentences {
			scores[i] *= e.cfg.LeadBoost
		}
	}
	return scores
}

// rankByScore returns sentence indices ordered by score descending.
// Ties keep ascending original order: the sort must be stable, and the
// input order is ascending by construction. This tie-break is a
// correctness property relied on by the selectors.
func rankByScore(scores []float64) []int {
	ranked := make([]int, len(scores))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})
	return ranked
}
