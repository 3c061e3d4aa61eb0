package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/nyaya/ai"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/storage"
)

// CorpusRefresher receives newly ingested documents so the lexical corpus
// stays in step with the repository. Satisfied by the search engine.
type CorpusRefresher interface {
	UpsertDocuments(docs []*core.Document)
}

// Pipeline orchestrates the ingestion of legal documents. Documents are
// validated, assigned content-hash IDs when needed, and persisted
// synchronously; embedding and vector indexing run asynchronously on a
// worker pool.
type Pipeline struct {
	documents storage.DocumentRepository
	vectors   storage.VectorIndex
	embedder  ai.Embedder
	refresher CorpusRefresher
	pool      *ants.Pool
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "ingestion")
		return nil
	}
}

// WithVectorIndex sets the vector index that receives embedded documents.
// Without one, ingested documents are reachable through the lexical channel
// only.
func WithVectorIndex(vectors storage.VectorIndex) Option {
	return func(p *Pipeline) error {
		p.vectors = vectors
		return nil
	}
}

// WithEmbedder sets the embedder used to vectorize document contents.
// Without one, the embedding stage is skipped.
func WithEmbedder(embedder ai.Embedder) Option {
	return func(p *Pipeline) error {
		p.embedder = embedder
		return nil
	}
}

// WithCorpusRefresher registers a receiver for ingested documents, keeping
// an in-memory lexical corpus current.
func WithCorpusRefresher(refresher CorpusRefresher) Option {
	return func(p *Pipeline) error {
		p.refresher = refresher
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(documents storage.DocumentRepository, opts ...Option) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents: documents,
		pool:      pool,
		logger:    slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest validates and persists documents, then submits them for
// asynchronous embedding and vector indexing. Documents without an ID get a
// content-hash ID. Errors during async processing are logged but do not
// fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, docs ...*core.Document) error {
	if len(docs) == 0 {
		return nil
	}

	for _, doc := range docs {
		if err := core.ValidateDocument(doc); err != nil {
			return err
		}
		if doc.ID == "" {
			doc.ID = core.IDFromContent(doc.Content)
		}
	}

	if err := p.documents.PutDocuments(ctx, docs...); err != nil {
		return err
	}

	// The lexical corpus updates synchronously so keyword search sees the
	// batch as soon as Ingest returns.
	if p.refresher != nil {
		p.refresher.UpsertDocuments(docs)
	}

	if p.embedder == nil {
		return nil
	}

	batch := docs
	return p.pool.Submit(func() {
		if err := p.embedBatch(context.Background(), batch); err != nil {
			p.logger.Error("error embedding ingested documents", "err", err)
		}
	})
}

// embedBatch vectorizes a persisted batch and writes the vectors back to
// storage and the vector index.
func (p *Pipeline) embedBatch(ctx context.Context, docs []*core.Document) error {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	p.logger.Debug("generating embeddings", "documents", len(texts))
	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return err
	}
	if len(embeddings) != len(docs) {
		return fmt.Errorf("%w: expected %d, received %d", ErrEmbeddingMismatch, len(docs), len(embeddings))
	}

	for i := range docs {
		docs[i].Vector = NormalizeVector(embeddings[i])
	}

	if err := p.documents.PutDocuments(ctx, docs...); err != nil {
		return err
	}

	if p.vectors != nil {
		if err := p.vectors.IndexDocuments(ctx, docs...); err != nil {
			return err
		}
	}

	return nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
