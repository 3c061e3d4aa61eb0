package filter

import (
	"sort"

	"github.com/poiesic/nyaya/core"
)

// Scored pairs a document with its aggregate filter relevance score.
type Scored struct {
	Document *core.Document
	Score    float64
}

// Apply scores documents against a filter set. A document's score is the
// sum of boosts of every filter it matches, with a multi-facet bonus of
// 1 + 0.1*(matches-1) when more than one filter matches. Documents matching
// no filter are dropped. Results are sorted by score descending.
func Apply(docs []*core.Document, filters []Filter) []Scored {
	if len(filters) == 0 {
		scored := make([]Scored, 0, len(docs))
		for _, doc := range docs {
			scored = append(scored, Scored{Document: doc})
		}
		return scored
	}

	var scored []Scored
	for _, doc := range docs {
		if score := Score(doc, filters); score > 0 {
			scored = append(scored, Scored{Document: doc, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Score computes a single document's relevance against the filter set.
// Returns 0 when no filter matches.
func Score(doc *core.Document, filters []Filter) float64 {
	total := 0.0
	matches := 0
	for _, f := range filters {
		if f.Matches(doc.Metadata) {
			total += f.Boost
			matches++
		}
	}
	if matches > 1 {
		total *= 1 + float64(matches-1)*0.1
	}
	return total
}

// Stats summarizes how a filter set performs against a document batch.
type Stats struct {
	TotalDocuments   int
	FiltersApplied   int
	DocumentsMatched int
	AverageScore     float64
	MatchesPerField  map[string]int
}

// Statistics reports per-field match counts and aggregate scoring for a
// filter application, for tuning the inference tables.
func Statistics(docs []*core.Document, filters []Filter) Stats {
	stats := Stats{
		TotalDocuments:  len(docs),
		FiltersApplied:  len(filters),
		MatchesPerField: make(map[string]int),
	}

	scored := Apply(docs, filters)
	stats.DocumentsMatched = len(scored)

	sum := 0.0
	for _, s := range scored {
		sum += s.Score
		for _, f := range filters {
			if f.Matches(s.Document.Metadata) {
				stats.MatchesPerField[f.Field]++
			}
		}
	}
	if len(scored) > 0 {
		stats.AverageScore = sum / float64(len(scored))
	}
	return stats
}
