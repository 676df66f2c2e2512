package engine

// FrequencyTable maps each normalized content word of a document to its
// occurrence count. Built once per summarization call and read-only
// thereafter; no smoothing, no stemming.
type FrequencyTable map[string]int

// BuildFrequencyTable tokenizes the whole preprocessed document and counts
// content-word occurrences.
func BuildFrequencyTable(text string) FrequencyTable {
	words := ContentWords(text)
	freq := make(FrequencyTable, len(words))
	for _, w := range words {
		freq[w]++
	}
	return freq
}
