package lexical

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text, replaces punctuation with spaces, and splits on
// whitespace. Queries and documents must go through the same tokenizer so
// term statistics line up.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}
