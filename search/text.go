package search

import (
	"regexp"

	"github.com/poiesic/nyaya/lexical"
)

// sectionPattern matches "section N" references in queries and content.
var sectionPattern = regexp.MustCompile(`(?i)section\s+\d+`)

// tokenSet tokenizes text the same way the lexical index does and returns
// the distinct tokens.
func tokenSet(text string) map[string]bool {
	tokens := lexical.Tokenize(text)
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	return set
}

// jaccard computes the Jaccard similarity of two token sets.
// Two empty sets have similarity 0.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
