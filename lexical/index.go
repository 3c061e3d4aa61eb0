package lexical

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/poiesic/nyaya/core"
)

// Index ranks a fixed document corpus by BM25 term-frequency relevance.
// It is safe for concurrent use; AddDocuments replaces the corpus wholesale.
type Index struct {
	mu     sync.RWMutex
	docs   []*core.Document
	texts  []string
	model  *bm25Model
	logger *slog.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(idx *Index) {
		if logger == nil {
			logger = slog.Default()
		}
		idx.logger = logger
	}
}

// NewIndex creates an empty lexical index. Keyword search against an empty
// index returns no results rather than an error.
func NewIndex(opts ...Option) *Index {
	idx := &Index{
		logger: slog.Default().With("component", "lexical-index"),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// AddDocuments replaces the indexed corpus and rebuilds the ranking model.
func (idx *Index) AddDocuments(docs []*core.Document) {
	texts := make([]string, len(docs))
	corpus := make([][]string, len(docs))
	for i, doc := range docs {
		texts[i] = searchableText(doc)
		corpus[i] = Tokenize(texts[i])
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.docs = append([]*core.Document(nil), docs...)
	idx.texts = texts
	idx.model = newBM25Model(corpus)

	if idx.model == nil {
		idx.logger.Warn("lexical corpus is empty, keyword search disabled")
	} else {
		idx.logger.Debug("lexical corpus indexed", "documents", len(docs))
	}
}

// Search tokenizes the query, scores it against the corpus, discards
// documents below minScore, and returns the topK results sorted by
// descending keyword score. Returns nil when the corpus is empty.
func (idx *Index) Search(query string, topK int, minScore float64) []*core.SearchResult {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.model == nil {
		return nil
	}

	scores := idx.model.Scores(Tokenize(query))

	var results []*core.SearchResult
	for i, score := range scores {
		if score < minScore {
			continue
		}
		results = append(results, &core.SearchResult{
			Document:     idx.docs[i],
			KeywordScore: score,
			SearchType:   core.SearchTypeKeyword,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].KeywordScore > results[j].KeywordScore
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Documents returns the cached corpus. The engine's lowest-fidelity semantic
// fallback scores query overlap against these documents.
func (idx *Index) Documents() []*core.Document {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.docs
}

// Size returns the number of indexed documents.
func (idx *Index) Size() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

// searchableText flattens a document into one searchable string: content
// first, then title, act name, section reference, court type, and keywords.
// The order matters for downstream truncation, not for scoring.
func searchableText(doc *core.Document) string {
	parts := []string{doc.Content}

	if title := doc.Metadata.Lookup("title"); title != nil {
		parts = append(parts, core.AsString(title))
	} else if title := doc.Metadata.Lookup("case_title"); title != nil {
		parts = append(parts, core.AsString(title))
	}

	if act := doc.Metadata.Lookup("act_name"); act != nil {
		parts = append(parts, core.AsString(act))
	}

	if section := doc.Metadata.Lookup("section_number"); section != nil {
		parts = append(parts, fmt.Sprintf("Section %s", core.AsString(section)))
	}

	if court := doc.Metadata.Lookup("court_type"); court != nil {
		parts = append(parts, core.AsString(court))
	}

	switch keywords := doc.Metadata.Lookup("keywords").(type) {
	case []any:
		for _, kw := range keywords {
			parts = append(parts, core.AsString(kw))
		}
	case []string:
		parts = append(parts, keywords...)
	}

	return strings.Join(parts, " ")
}
