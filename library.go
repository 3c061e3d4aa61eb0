// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package nyaya

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/nyaya/ai"
	"github.com/poiesic/nyaya/ai/openai"
	"github.com/poiesic/nyaya/ai/voyage"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/filter"
	"github.com/poiesic/nyaya/ingestion"
	"github.com/poiesic/nyaya/lexical"
	"github.com/poiesic/nyaya/search"
	"github.com/poiesic/nyaya/storage"
	"github.com/poiesic/nyaya/storage/badger"
	"github.com/poiesic/nyaya/storage/redis"
)

// Library is the top-level handle over a legal-document corpus: durable
// storage, a vector index, an embedding chain, and the hybrid search
// engine, wired together once at Open.
type Library struct {
	backend     *badger.Backend
	documents   storage.DocumentRepository
	checkpoints storage.CheckpointRepository
	vectors     storage.VectorIndex
	embedder    ai.Embedder
	engine      *search.Engine
	logger      *slog.Logger
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryOptions)

type libraryOptions struct {
	aiConfig     *ai.Config
	searchConfig *search.Config
	redisConfig  *redis.Config
	monitor      search.Monitor
	inMemory     bool
}

// WithAIConfig sets the embedding provider configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(config *ai.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.aiConfig = config
	}
}

// WithSearchConfig sets the search engine tuning parameters.
// Default is search.DefaultConfig().
func WithSearchConfig(config search.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.searchConfig = &config
	}
}

// WithRedisVectors stores vectors in a RediSearch HNSW index instead of the
// embedded badger scan. Appropriate once a corpus outgrows a single process.
func WithRedisVectors(config redis.Config) LibraryOption {
	return func(o *libraryOptions) {
		o.redisConfig = &config
	}
}

// WithMonitor installs a search pipeline monitor, such as
// search.NewMetricsMonitor.
func WithMonitor(monitor search.Monitor) LibraryOption {
	return func(o *libraryOptions) {
		o.monitor = monitor
	}
}

// WithInMemory opens the storage backend in memory, discarding all data on
// Close. Intended for tests.
func WithInMemory() LibraryOption {
	return func(o *libraryOptions) {
		o.inMemory = true
	}
}

// Open opens or creates a library at the given path and wires up storage,
// embedding, and search. The lexical corpus is warmed from storage so
// keyword search works immediately.
func Open(filePath string, opts ...LibraryOption) (*Library, error) {
	options := &libraryOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default().With("component", "library")

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	documents := badger.NewDocumentRepository(backend)
	checkpoints := badger.NewCheckpointRepository(backend)

	var vectors storage.VectorIndex
	if options.redisConfig != nil {
		vectors, err = redis.NewIndex(context.Background(), *options.redisConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	} else {
		vectors = badger.NewVectorIndex(backend)
	}

	embedder := buildEmbedderChain(options.aiConfig, logger)

	engineOpts := []search.Option{
		search.WithVectorIndex(vectors),
	}
	if embedder != nil {
		engineOpts = append(engineOpts, search.WithEmbedder(embedder))
	}
	if options.searchConfig != nil {
		engineOpts = append(engineOpts, search.WithConfig(*options.searchConfig))
	}
	if options.monitor != nil {
		engineOpts = append(engineOpts, search.WithMonitor(options.monitor))
	}

	engine, err := search.NewEngine(lexical.NewIndex(), engineOpts...)
	if err != nil {
		vectors.Close()
		backend.Close()
		return nil, err
	}

	lib := &Library{
		backend:     backend,
		documents:   documents,
		checkpoints: checkpoints,
		vectors:     vectors,
		embedder:    embedder,
		engine:      engine,
		logger:      logger,
	}

	if err := lib.warmCorpus(context.Background()); err != nil {
		lib.Close()
		return nil, err
	}

	return lib, nil
}

// buildEmbedderChain assembles the embedding fallback chain: the remote
// provider behind a circuit breaker first, the local model second. Returns
// nil when no tier is configured; search then runs on its own fallback.
func buildEmbedderChain(config *ai.Config, logger *slog.Logger) ai.Embedder {
	var providers []ai.Provider

	if config.HasRemote() {
		remote, err := voyage.NewEmbedder(config)
		if err != nil {
			logger.Warn("remote embedder unavailable", "err", err)
		} else {
			providers = append(providers, ai.Provider{
				Name:     "voyage",
				Embedder: ai.WithBreaker(remote, "voyage"),
			})
		}
	}

	if config.HasLocal() {
		local, err := openai.NewEmbedder(config)
		if err != nil {
			logger.Warn("local embedder unavailable", "err", err)
		} else {
			providers = append(providers, ai.Provider{Name: "local", Embedder: local})
		}
	}

	if len(providers) == 0 {
		return nil
	}
	return ai.NewChain(providers)
}

// warmCorpus loads every stored document into the engine's lexical corpus.
func (lib *Library) warmCorpus(ctx context.Context) error {
	var corpus []*core.Document
	for _, ns := range core.Namespaces() {
		docs, err := lib.documents.ListDocuments(ctx, ns)
		if err != nil {
			return err
		}
		corpus = append(corpus, docs...)
	}
	if len(corpus) > 0 {
		lib.engine.AddDocuments(corpus)
		lib.logger.Debug("lexical corpus warmed", "documents", len(corpus))
	}
	return nil
}

// Close releases the vector index and storage backend.
func (lib *Library) Close() error {
	if err := lib.vectors.Close(); err != nil {
		lib.logger.Error("error closing vector index", "err", err)
	}

	if err := lib.backend.Close(); err != nil {
		lib.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Search runs a hybrid search with metadata filters inferred from the query
// text.
func (lib *Library) Search(ctx context.Context, query string, topK int) []*core.SearchResult {
	filters := filter.InferFilters(query, time.Now())
	return lib.engine.Search(ctx, query, filters, topK)
}

// Engine returns the underlying search engine for callers that supply their
// own filters or monitors.
func (lib *Library) Engine() *search.Engine {
	return lib.engine
}

func (lib *Library) DocumentRepository() storage.DocumentRepository {
	return lib.documents
}

func (lib *Library) CheckpointRepository() storage.CheckpointRepository {
	return lib.checkpoints
}

func (lib *Library) VectorIndex() storage.VectorIndex {
	return lib.vectors
}

// NewIngestionPipeline creates a pipeline wired to this library's stores,
// embedder, and lexical corpus.
func (lib *Library) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	base := []ingestion.Option{
		ingestion.WithVectorIndex(lib.vectors),
		ingestion.WithCorpusRefresher(lib.engine),
	}
	if lib.embedder != nil {
		base = append(base, ingestion.WithEmbedder(lib.embedder))
	}
	return ingestion.NewPipeline(lib.documents, append(base, opts...)...)
}

// NewReindexer creates a reindexer wired to this library's stores and
// embedder.
func (lib *Library) NewReindexer(config *ingestion.ReindexConfig, progress io.Writer) (*ingestion.Reindexer, error) {
	return ingestion.NewReindexer(lib.documents, lib.checkpoints, lib.vectors, lib.embedder, config, progress)
}
