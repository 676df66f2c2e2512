package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContentWords lowercases the text, splits it into alphanumeric tokens and
// keeps those that are not stopwords and are longer than two characters.
// Duplicates are kept; the frequency model counts occurrences.
func ContentWords(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// ruleSplitter is the default SentenceSplitter: a rule-based boundary
// detector over terminal punctuation with abbreviation and closing-quote
// handling. It is deliberately simple; callers needing a different
// algorithm inject their own SentenceSplitter.
type ruleSplitter struct{}

// NewRuleSplitter returns the default rule-based sentence splitter.
func NewRuleSplitter() SentenceSplitter {
	return ruleSplitter{}
}

// abbreviations that end with a period but do not terminate a sentence.
// Compared lowercased, without the trailing period.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"inc": true, "ltd": true, "co": true, "fig": true, "no": true,
	"al": true, "approx": true, "dept": true, "est": true, "min": true,
	"max": true, "e.g": true, "i.e": true, "u.s": true, "u.k": true,
}

// Split breaks text into an ordered sequence of sentence strings.
// A sentence ends at '.', '!' or '?' (optionally followed by closing
// quotes) when the terminator is not part of a known abbreviation and the
// following text starts a new sentence. Whitespace-only fragments are
// dropped. Text without any terminator is returned as a single sentence.
func (ruleSplitter) Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		end := i
		// Fold trailing closing quotes into the sentence.
		for end+1 < len(runes) && isClosingQuote(runes[end+1]) {
			end++
		}

		if r == '.' && isAbbreviation(runes, start, i) {
			continue
		}
		if !startsNewSentence(runes, end+1) {
			continue
		}

		if s := strings.TrimSpace(string(runes[start : end+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = end + 1
		i = end
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isClosingQuote(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == '”' || r == '’'
}

// isAbbreviation reports whether the period at runes[dot] terminates a
// known abbreviation, a single capital initial (as in "J. Smith"), or an
// embedded dotted token such as "e.g." or a decimal number.
func isAbbreviation(runes []rune, start, dot int) bool {
	// Digits on both sides: decimal number, not a boundary.
	if dot > 0 && dot+1 < len(runes) &&
		unicode.IsDigit(runes[dot-1]) && unicode.IsDigit(runes[dot+1]) {
		return true
	}

	// Collect the token immediately before the period.
	tokStart := dot
	for tokStart > start && !unicode.IsSpace(runes[tokStart-1]) {
		tokStart--
	}
	tok := strings.ToLower(strings.Trim(string(runes[tokStart:dot]), `"'()`))
	if tok == "" {
		return false
	}

	// Single-letter initials: "J." in "J. Smith".
	if utf8.RuneCountInString(tok) == 1 && !unicode.IsDigit([]rune(tok)[0]) {
		return true
	}
	return abbreviations[tok]
}

// startsNewSentence reports whether the text at or after pos looks like
// the start of a new sentence: end of input, or whitespace followed by an
// uppercase letter, digit, or opening quote.
func startsNewSentence(runes []rune, pos int) bool {
	if pos >= len(runes) {
		return true
	}
	if !unicode.IsSpace(runes[pos]) {
		return false
	}
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	if pos >= len(runes) {
		return true
	}
	r := runes[pos]
	return unicode.IsUpper(r) || unicode.IsDigit(r) ||
		r == '"' || r == '\'' || r == '“' || r == '‘'
}
