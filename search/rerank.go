package search

import (
	"strings"

	"github.com/poiesic/nyaya/core"
)

// rerank applies the diversity pass followed by the query-specific pass.
// Both adjust FinalScore in place and re-sort; ranks are left as assigned
// by the scoring stage.
func (e *Engine) rerank(results []*core.SearchResult, query string) []*core.SearchResult {
	if len(results) == 0 {
		return results
	}

	if e.config.DiversityFactor > 0 {
		results = e.applyDiversity(results)
	}

	return applyQueryBoosts(results, query)
}

// applyDiversity penalizes near-duplicates of higher-ranked results. The top
// result is always kept unchanged; each remaining result is penalized by its
// minimum Jaccard similarity against everything accepted before it. All
// candidates are appended regardless of penalty; there is no drop threshold.
// O(n²) in candidate count, which stays small by configuration.
func (e *Engine) applyDiversity(results []*core.SearchResult) []*core.SearchResult {
	if len(results) <= 1 {
		return results
	}

	accepted := []*core.SearchResult{results[0]}
	acceptedTokens := []map[string]bool{tokenSet(results[0].Document.Content)}

	for _, r := range results[1:] {
		tokens := tokenSet(r.Document.Content)

		minSimilarity := 1.0
		for i := range accepted {
			sim := jaccard(tokens, acceptedTokens[i])
			if sim < minSimilarity {
				minSimilarity = sim
			}
		}

		r.FinalScore *= 1 - e.config.DiversityFactor*minSimilarity

		accepted = append(accepted, r)
		acceptedTokens = append(acceptedTokens, tokens)
	}

	sortByFinalScore(accepted)
	return accepted
}

// applyQueryBoosts multiplies scores for query-specific signals. The boosts
// are independent and compound: verbatim query substring ×1.2, section
// reference in both query and content ×1.1, "supreme court" in both ×1.15.
func applyQueryBoosts(results []*core.SearchResult, query string) []*core.SearchResult {
	queryLower := strings.ToLower(query)
	queryHasSection := sectionPattern.MatchString(queryLower)
	queryHasSupremeCourt := strings.Contains(queryLower, "supreme court")

	for _, r := range results {
		content := strings.ToLower(r.Document.Content)

		if strings.Contains(content, queryLower) {
			r.FinalScore *= 1.2
		}
		if queryHasSection && sectionPattern.MatchString(content) {
			r.FinalScore *= 1.1
		}
		if queryHasSupremeCourt && strings.Contains(content, "supreme court") {
			r.FinalScore *= 1.15
		}
	}

	sortByFinalScore(results)
	return results
}
