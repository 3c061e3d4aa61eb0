package search

import (
	"context"
	"sort"
	"strings"

	"github.com/poiesic/nyaya/core"
)

// noContentSentinel marks vector-store hits whose payload carried no usable
// text. Such hits are dropped rather than surfaced.
const noContentSentinel = "No content available"

// semanticSearch runs the vector-similarity channel. It never returns an
// error: a missing embedder or vector index, an embedding failure, or a
// failure in every namespace degrades to the keyword-overlap fallback tier
// over the locally cached corpus.
func (e *Engine) semanticSearch(ctx context.Context, query string) []*core.SearchResult {
	if e.vectors == nil || e.embedder == nil {
		e.logger.Warn("semantic channel unavailable, using fallback search",
			"have_vectors", e.vectors != nil, "have_embedder", e.embedder != nil)
		return e.fallbackSearch(query)
	}

	vector, err := e.embedder.EmbedText(ctx, query)
	if err != nil {
		e.logger.Warn("query embedding failed, using fallback search", "err", err)
		return e.fallbackSearch(query)
	}

	var results []*core.SearchResult
	failures := 0

	for _, ns := range core.Namespaces() {
		matches, err := e.vectors.Query(ctx, ns, vector, e.config.SemanticTopK)
		if err != nil {
			// One namespace failing must not abort the other.
			e.logger.Warn("vector query failed", "namespace", ns, "err", err)
			failures++
			continue
		}

		for _, m := range matches {
			if m.Document == nil {
				continue
			}
			content := strings.TrimSpace(m.Document.Content)
			if content == "" || content == noContentSentinel {
				continue
			}
			results = append(results, &core.SearchResult{
				Document:      m.Document,
				SemanticScore: m.Score,
				SearchType:    core.SearchTypeSemantic,
			})
		}
	}

	if failures == len(core.Namespaces()) {
		return e.fallbackSearch(query)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SemanticScore > results[j].SemanticScore
	})
	if len(results) > e.config.SemanticTopK {
		results = results[:e.config.SemanticTopK]
	}

	return results
}

// fallbackSearch is the lowest-fidelity semantic tier: naive keyword overlap
// against the locally cached corpus. Each query word found in a document
// adds 0.1 to its score, capped at 1.0. It never fails; at worst it returns
// an empty list.
func (e *Engine) fallbackSearch(query string) []*core.SearchResult {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	var results []*core.SearchResult
	for _, doc := range e.lexical.Documents() {
		content := strings.ToLower(doc.Content)

		score := 0.0
		for _, word := range words {
			if strings.Contains(content, word) {
				score += 0.1
			}
		}
		if score <= 0 {
			continue
		}
		if score > 1.0 {
			score = 1.0
		}

		results = append(results, &core.SearchResult{
			Document:      doc,
			SemanticScore: score,
			SearchType:    core.SearchTypeSemanticFallback,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SemanticScore > results[j].SemanticScore
	})
	if len(results) > e.config.SemanticTopK {
		results = results[:e.config.SemanticTopK]
	}

	return results
}
