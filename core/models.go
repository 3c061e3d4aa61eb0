package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// Namespace identifies a partition of the document corpus and vector store.
type Namespace string

const (
	// NamespaceActs holds statutes: acts, sections, and articles.
	NamespaceActs Namespace = "acts"
	// NamespaceJudgments holds case law: court judgments and orders.
	NamespaceJudgments Namespace = "judgments"
)

// Namespaces returns the fixed set of namespaces in search order.
func Namespaces() []Namespace {
	return []Namespace{NamespaceActs, NamespaceJudgments}
}

// IsValid reports whether the namespace is one of the known partitions.
func (n Namespace) IsValid() bool {
	return n == NamespaceActs || n == NamespaceJudgments
}

// IDFromContent generates a deterministic document ID from text content
// using BLAKE2b hashing. Identical content always produces the same ID.
func IDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Document is a single legal document: an act section or a case judgment.
// It may be enriched with an embedding vector during ingestion.
// Documents are treated as immutable once indexed for a search session.
type Document struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Namespace Namespace `json:"namespace"`
	// Metadata is an open mapping: legal_domain, jurisdiction, court_type,
	// year, act_name, section_number, keywords, ...
	Metadata Metadata `json:"metadata,omitempty"`
	// Vector is the embedding, populated by the ingestion pipeline.
	Vector []float32 `json:"vector,omitempty"`
}

// SearchType tags which retrieval channel produced a result.
type SearchType string

const (
	// SearchTypeSemantic marks a result found only by vector similarity.
	SearchTypeSemantic SearchType = "semantic"
	// SearchTypeSemanticFallback marks a degraded-path semantic result scored
	// by naive keyword overlap instead of embeddings.
	SearchTypeSemanticFallback SearchType = "semantic_fallback"
	// SearchTypeKeyword marks a result found only by lexical scoring.
	SearchTypeKeyword SearchType = "keyword"
	// SearchTypeHybrid marks a result found by both channels.
	SearchTypeHybrid SearchType = "hybrid"
)

// SearchResult joins a document with its per-channel relevance scores.
//
// Channel scores are normalized into [0,1] before fusion. FinalScore starts
// as the weighted combination of the three channels and is overwritten in
// place by re-ranking adjustments; no pre-rerank score is retained.
// Rank is dense, 1-based, and assigned when results are first sorted by
// FinalScore.
type SearchResult struct {
	Document      *Document
	SemanticScore float64
	KeywordScore  float64
	MetadataScore float64
	FinalScore    float64
	Rank          int
	SearchType    SearchType
}

// VectorMatch is a single nearest-neighbor hit from a vector index.
type VectorMatch struct {
	Document *Document
	Score    float64
}
