package search

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/poiesic/nyaya/ai"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/filter"
	"github.com/poiesic/nyaya/lexical"
	"github.com/poiesic/nyaya/storage"
)

// Engine combines semantic vector similarity, lexical scoring, and metadata
// facets into a single ranked result set, then re-ranks for diversity and
// query-specific relevance.
//
// One long-lived engine instance is expected per process, constructed
// explicitly with its collaborators and reused across requests. The engine
// never fails a search: degraded collaborators (missing embedder, missing
// vector index, empty corpus) fall back to lower-fidelity tiers and the
// result list may simply be empty.
type Engine struct {
	lexical  *lexical.Index
	vectors  storage.VectorIndex
	embedder ai.Embedder
	config   Config
	logger   *slog.Logger
	monitor  Monitor
	now      func() time.Time
	history  *historyLog
}

// Option configures an Engine.
type Option func(*Engine) error

// WithConfig replaces the default configuration.
func WithConfig(config Config) Option {
	return func(e *Engine) error {
		e.config = config
		return nil
	}
}

// WithVectorIndex attaches a vector index for the semantic channel.
// Without one, semantic search runs on the keyword-overlap fallback tier.
func WithVectorIndex(index storage.VectorIndex) Option {
	return func(e *Engine) error {
		e.vectors = index
		return nil
	}
}

// WithEmbedder attaches an embedder (usually an ai.Chain) for query vectors.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(e *Engine) error {
		e.embedder = embedder
		return nil
	}
}

// WithMonitor sets a default monitor receiving pipeline callbacks.
func WithMonitor(monitor Monitor) Option {
	return func(e *Engine) error {
		e.monitor = monitor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithClock overrides the time source used by the recency boost and the
// history log. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) error {
		if now != nil {
			e.now = now
		}
		return nil
	}
}

// NewEngine creates a fusion engine over the given lexical index.
func NewEngine(lexicalIndex *lexical.Index, opts ...Option) (*Engine, error) {
	if lexicalIndex == nil {
		return nil, ErrLexicalIndexRequired
	}

	e := &Engine{
		lexical: lexicalIndex,
		config:  DefaultConfig(),
		logger:  slog.Default().With("component", "search-engine"),
		now:     time.Now,
		history: newHistoryLog(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// AddDocuments replaces the lexical corpus, which also serves as the
// fallback cache for degraded semantic search. No persistence happens here;
// durable storage is the ingestion pipeline's concern.
func (e *Engine) AddDocuments(docs []*core.Document) {
	e.lexical.AddDocuments(docs)
}

// UpsertDocuments merges documents into the lexical corpus by identity
// instead of replacing it, for incremental ingestion. An incoming document
// with a known namespace and ID replaces the stored one.
func (e *Engine) UpsertDocuments(docs []*core.Document) {
	existing := e.lexical.Documents()
	merged := make([]*core.Document, 0, len(existing)+len(docs))
	byKey := make(map[string]int, len(existing))

	for _, doc := range existing {
		byKey[string(doc.Namespace)+":"+doc.ID] = len(merged)
		merged = append(merged, doc)
	}
	for _, doc := range docs {
		key := string(doc.Namespace) + ":" + doc.ID
		if i, ok := byKey[key]; ok {
			merged[i] = doc
			continue
		}
		byKey[key] = len(merged)
		merged = append(merged, doc)
	}

	e.lexical.AddDocuments(merged)
}

// Search runs the full fusion pipeline and returns at most topK results.
func (e *Engine) Search(ctx context.Context, query string, filters []filter.Filter, topK int) []*core.SearchResult {
	return e.SearchWithMonitor(ctx, query, filters, topK, nil)
}

// SearchWithMonitor runs the full fusion pipeline with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, filters []filter.Filter, topK int, monitor Monitor) []*core.SearchResult {
	if monitor == nil {
		if e.monitor != nil {
			monitor = e.monitor
		} else {
			monitor = &noopMonitor{}
		}
	}

	monitor.Start(query)

	// 1. Both channels run to completion, degrading to empty lists; neither
	// depends on the other's output.
	semantic := e.semanticSearch(ctx, query)
	monitor.AfterSemanticSearch(semantic)

	keyword := e.lexical.Search(query, e.config.KeywordTopK, e.config.MinKeywordScore)
	monitor.AfterKeywordSearch(keyword)

	// 2. Merge by document identity.
	results := mergeResults(semantic, keyword)
	monitor.AfterMerge(results)

	// 3. Hard metadata filter.
	if e.config.EnableMetadataFiltering && len(filters) > 0 {
		results = applyMetadataFilters(results, filters)
	}
	monitor.AfterMetadataFilter(results)

	// 4-7. Normalize, weight, recency, sort, rank.
	e.scoreResults(results)
	monitor.AfterScoring(results)

	// 8. Re-ranking adjusts FinalScore in place; ranks keep their step-7
	// assignment.
	if e.config.EnableReranking {
		results = e.rerank(results, query)
	}
	monitor.AfterRerank(results)

	// 9. Truncate and record.
	if topK >= 0 && len(results) > topK {
		results = results[:topK]
	}
	e.recordSearch(query, results)
	monitor.Finish(results)

	return results
}

// mergeResults builds one entry per unique (namespace, id) pair. Semantic
// results seed the map; a lexical hit on a seeded entry contributes its
// keyword score and flips the type to hybrid, otherwise it inserts as a
// keyword entry. Insertion order is preserved for determinism.
func mergeResults(semantic, keyword []*core.SearchResult) []*core.SearchResult {
	merged := make([]*core.SearchResult, 0, len(semantic)+len(keyword))
	byKey := make(map[string]*core.SearchResult, len(semantic)+len(keyword))

	key := func(doc *core.Document) string {
		return string(doc.Namespace) + ":" + doc.ID
	}

	for _, r := range semantic {
		k := key(r.Document)
		if _, ok := byKey[k]; ok {
			continue
		}
		byKey[k] = r
		merged = append(merged, r)
	}

	for _, r := range keyword {
		k := key(r.Document)
		if existing, ok := byKey[k]; ok {
			existing.KeywordScore = r.KeywordScore
			existing.SearchType = core.SearchTypeHybrid
			continue
		}
		byKey[k] = r
		merged = append(merged, r)
	}

	return merged
}

// applyMetadataFilters drops entries matching no filter and installs the
// facet score on the survivors.
func applyMetadataFilters(results []*core.SearchResult, filters []filter.Filter) []*core.SearchResult {
	filtered := results[:0]
	for _, r := range results {
		score := filter.Score(r.Document, filters)
		if score <= 0 {
			continue
		}
		r.MetadataScore = score
		filtered = append(filtered, r)
	}
	return filtered
}

// scoreResults normalizes channel scores, computes the weighted sum, applies
// the recency multiplier, sorts, and assigns dense 1-based ranks. Ranks are
// not reassigned by later stages.
func (e *Engine) scoreResults(results []*core.SearchResult) {
	for _, r := range results {
		// Channel scores are not inherently bounded (BM25, facet boosts), so
		// values above 1 saturate at 1. Lossy but deliberate.
		r.SemanticScore = clamp01(r.SemanticScore)
		r.KeywordScore = clamp01(r.KeywordScore)
		r.MetadataScore = clamp01(r.MetadataScore)

		r.FinalScore = e.config.SemanticWeight*r.SemanticScore +
			e.config.KeywordWeight*r.KeywordScore +
			e.config.MetadataWeight*r.MetadataScore

		if e.config.RecencyBoost {
			r.FinalScore *= e.recencyMultiplier(r.Document)
		}
	}

	sortByFinalScore(results)

	for i, r := range results {
		r.Rank = i + 1
	}
}

// recencyMultiplier favors newer documents by publication year. Missing or
// unparseable dates are a multiplier of 1, never an error.
func (e *Engine) recencyMultiplier(doc *core.Document) float64 {
	year, ok := doc.Metadata.Year()
	if !ok {
		return 1.0
	}

	age := e.now().Year() - year
	switch {
	case age <= 0:
		return 1.2
	case age <= 1:
		return 1.1
	case age <= 3:
		return 1.05
	default:
		decay := math.Exp(-float64(age) / e.config.RecencyDecayDays * 365)
		return math.Max(0.8, decay)
	}
}

func (e *Engine) recordSearch(query string, results []*core.SearchResult) {
	rec := HistoryRecord{
		Query:       query,
		Timestamp:   e.now(),
		ResultCount: len(results),
	}
	if len(results) > 0 {
		rec.TopScore = results[0].FinalScore
	}

	seen := make(map[core.SearchType]bool)
	for _, r := range results {
		if !seen[r.SearchType] {
			seen[r.SearchType] = true
			rec.SearchTypes = append(rec.SearchTypes, r.SearchType)
		}
	}

	e.history.append(rec)
}

func sortByFinalScore(results []*core.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})
}

func clamp01(v float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}
