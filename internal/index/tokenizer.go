// internal/index/tokenizer.go
package index

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W+`)

// Tokenize is the shared tokenization rule used by index construction,
// message search and thread detection. Lowercase, non-word runs become
// spaces, tokens of length <= 2 are dropped, and every adjacent pair of
// surviving tokens is emitted as a bigram after the unigrams.
func Tokenize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	words := make([]string, 0, 8)
	for _, w := range strings.Fields(cleaned) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}

	tokens := make([]string, 0, len(words)*2)
	tokens = append(tokens, words...)
	for i := 0; i+1 < len(words); i++ {
		tokens = append(tokens, words[i]+" "+words[i+1])
	}
	return tokens
}
