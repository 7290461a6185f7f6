// internal/search/scorer.go
package search

import "strings"

// RelevanceThreshold is the fixed cut-off shared by message, server and
// channel search. Results scoring at or below it are dropped.
const RelevanceThreshold = 0.1

// Score computes the bag-of-words overlap between a query and a content
// string. Exact word matches count 2, substring matches count 1, and the
// total is normalized by the query word count so short and long queries
// produce comparably scaled scores. Order-independent by construction;
// intentionally not TF-IDF and not normalized by content length.
func Score(query, content string) float64 {
	queryWords := strings.Fields(strings.ToLower(query))
	contentWords := strings.Fields(strings.ToLower(content))

	score := 0.0
	for _, qw := range queryWords {
		for _, cw := range contentWords {
			if qw == cw {
				score += 2
			} else if strings.Contains(cw, qw) || strings.Contains(qw, cw) {
				// Substring tolerance is what lets "valor" match "valorant".
				score++
			}
		}
	}

	n := len(queryWords)
	if n < 1 {
		n = 1
	}
	return score / float64(n)
}
