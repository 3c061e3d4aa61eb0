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


package ingestion

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/nyaya/ai"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/storage"
)

// ReindexConfig holds configuration for the reindexing operation.
type ReindexConfig struct {
	// BatchSize is the number of documents to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultReindexConfig returns a ReindexConfig with sensible defaults.
func DefaultReindexConfig() *ReindexConfig {
	return &ReindexConfig{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer re-embeds every document in a namespace, typically after an
// embedding-model change. It walks the repository in ID order, persists a
// checkpoint after each batch, and resumes from the checkpoint when
// interrupted.
type Reindexer struct {
	documents   storage.DocumentRepository
	checkpoints storage.CheckpointRepository
	vectors     storage.VectorIndex
	embedder    ai.Embedder
	config      *ReindexConfig
	progress    io.Writer
}

// NewReindexer creates a new reindexer.
// vectors may be nil; the vector index is then left untouched.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(
	documents storage.DocumentRepository,
	checkpoints storage.CheckpointRepository,
	vectors storage.VectorIndex,
	embedder ai.Embedder,
	config *ReindexConfig,
	progress io.Writer,
) (*Reindexer, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if checkpoints == nil {
		return nil, ErrCheckpointRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultReindexConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Reindexer{
		documents:   documents,
		checkpoints: checkpoints,
		vectors:     vectors,
		embedder:    embedder,
		config:      config,
		progress:    progress,
	}, nil
}

// Run re-embeds all documents in the namespace. Progress is reported to the
// configured writer; a checkpoint is saved after each batch and cleared on
// completion.
func (r *Reindexer) Run(ctx context.Context, ns core.Namespace) error {
	job := reindexJob(ns)

	total, err := r.documents.CountDocuments(ctx, ns)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}
	if total == 0 {
		fmt.Fprintf(r.progress, "No documents found in namespace %q\n", ns)
		return nil
	}

	afterID := ""
	processed := 0
	if cp, err := r.checkpoints.LoadCheckpoint(ctx, job); err == nil && cp != nil && cp.Namespace == ns {
		afterID = cp.LastID
		processed = cp.Processed
		fmt.Fprintf(r.progress, "Resuming from checkpoint: %d documents already processed\n", processed)
	}

	fmt.Fprintf(r.progress, "Starting reindex of %d documents in %q (batch size: %d)\n",
		total, ns, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()
	tracker.Update(processed)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		batch, err := r.documents.ListAfter(ctx, ns, afterID, r.config.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		if err := r.processBatch(ctx, batch); err != nil {
			return err
		}

		processed += len(batch)
		afterID = batch[len(batch)-1].ID

		checkpoint := &core.Checkpoint{
			Job:       job,
			Namespace: ns,
			LastID:    afterID,
			Processed: processed,
		}
		if err := r.checkpoints.SaveCheckpoint(ctx, checkpoint); err != nil {
			return fmt.Errorf("failed to save checkpoint: %w", err)
		}

		tracker.Update(processed)
	}

	tracker.Finish()

	if err := r.checkpoints.ClearCheckpoint(ctx, job); err != nil {
		return fmt.Errorf("failed to clear checkpoint: %w", err)
	}

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindex complete. Processed %d documents in %v (%.1f documents/sec)\n",
		processed, elapsed.Round(time.Second), float64(processed)/elapsed.Seconds())

	return nil
}

// processBatch embeds one batch with retry and writes the refreshed vectors
// to the repository and the vector index.
func (r *Reindexer) processBatch(ctx context.Context, batch []*core.Document) error {
	texts := make([]string, len(batch))
	for i, doc := range batch {
		texts[i] = doc.Content
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = r.embedder.EmbedTexts(ctx, texts)
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", r.config.MaxRetries, err)
	}

	if len(embeddings) != len(batch) {
		return fmt.Errorf("%w: expected %d, received %d", ErrEmbeddingMismatch, len(batch), len(embeddings))
	}

	for i := range batch {
		batch[i].Vector = NormalizeVector(embeddings[i])
	}

	if err := r.documents.PutDocuments(ctx, batch...); err != nil {
		return fmt.Errorf("failed to update documents: %w", err)
	}

	if r.vectors != nil {
		if err := r.vectors.IndexDocuments(ctx, batch...); err != nil {
			return fmt.Errorf("failed to index vectors: %w", err)
		}
	}

	return nil
}

func reindexJob(ns core.Namespace) string {
	return "reindex:" + string(ns)
}
