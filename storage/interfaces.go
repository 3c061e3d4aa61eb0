package storage

import (
	"context"

	"github.com/poiesic/nyaya/core"
)

// DocumentRepository provides durable storage for legal documents.
// Implementations must be thread-safe and support concurrent access.
type DocumentRepository interface {
	// PutDocuments stores one or more documents, replacing any existing
	// document with the same namespace and ID.
	PutDocuments(ctx context.Context, docs ...*core.Document) error

	// GetDocument retrieves a single document by namespace and ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, ns core.Namespace, id string) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ns core.Namespace, ids ...string) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ns core.Namespace, ids ...string) error

	// ListDocuments retrieves every document in a namespace, in key order.
	ListDocuments(ctx context.Context, ns core.Namespace) ([]*core.Document, error)

	// ListAfter retrieves up to limit documents with ID greater than afterID,
	// in key order. Pass an empty afterID to start from the beginning.
	// Used for checkpointed batch walks.
	ListAfter(ctx context.Context, ns core.Namespace, afterID string, limit int) ([]*core.Document, error)

	// CountDocuments returns the number of documents in a namespace.
	CountDocuments(ctx context.Context, ns core.Namespace) (int, error)

	// Close closes the storage backend and releases resources.
	Close() error
}

// VectorIndex provides nearest-neighbour search over document vectors,
// partitioned by namespace. Implementations must be thread-safe.
type VectorIndex interface {
	// IndexDocuments adds or replaces documents in the index.
	// Documents without vectors are skipped.
	IndexDocuments(ctx context.Context, docs ...*core.Document) error

	// Query finds documents in a namespace similar to the given vector.
	// Returns up to topK matches ordered by similarity score (highest first).
	// Scores are cosine similarity.
	Query(ctx context.Context, ns core.Namespace, vector []float32, topK int) ([]*core.VectorMatch, error)

	// RemoveDocuments removes documents from the index by ID.
	// Missing documents are ignored.
	RemoveDocuments(ctx context.Context, ns core.Namespace, ids ...string) error

	// Close closes the index and releases resources.
	Close() error
}

// CheckpointRepository persists the progress of maintenance jobs so
// interrupted runs can resume.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a job.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a job.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, job string) (*core.Checkpoint, error)

	// ClearCheckpoint removes the checkpoint for a job, if any.
	ClearCheckpoint(ctx context.Context, job string) error
}
