package engine

import (
	"regexp"
	"strings"
)

// compressRule is one rewrite applied during sentence compression.
// Rules are data-driven and evaluated in order, so new filler phrases can
// be added without touching selector logic.
type compressRule struct {
	pattern *regexp.Regexp
	replace string
}

// fillerPhrases are removed from sentences on the abstractive path.
// Matching is case-insensitive on whole phrases; the phrases are disjoint,
// so removal order between them does not matter.
var fillerPhrases = []string{
	"in fact",
	"actually",
	"basically",
	"in other words",
	"that is to say",
	"to be honest",
	"frankly speaking",
	"as a matter of fact",
	"to be precise",
	"it is worth noting that",
	"it should be noted that",
	"needless to say",
	"as we know",
	"of course",
	"obviously",
	"clearly",
	"undoubtedly",
	"without a doubt",
}

var compressRules = buildCompressRules()

func buildCompressRules() []compressRule {
	rules := []compressRule{
		{regexp.MustCompile(`\([^)]*\)`), ""},
		{regexp.MustCompile(`\[[^\]]*\]`), ""},
	}
	for _, phrase := range fillerPhrases {
		rules = append(rules, compressRule{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`),
			replace: "",
		})
	}
	rules = append(rules,
		compressRule{regexp.MustCompile(`\s+`), " "},
		compressRule{regexp.MustCompile(`\s+([.,!?;:])`), "$1"},
	)
	return rules
}

// CompressSentence removes parenthetical and bracketed spans, strips
// filler phrases and cleans up the resulting whitespace and punctuation.
// It only deletes filler; meaning-bearing words are untouched. Degenerate
// input may compress to almost nothing; no minimum-length guard is applied
// at this stage.
func CompressSentence(sentence string) string {
	for _, rule := range compressRules {
		sentence = rule.pattern.ReplaceAllString(sentence, rule.replace)
	}
	return strings.TrimSpace(sentence)
}
