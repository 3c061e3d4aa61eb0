package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/storage"
)

// VectorIndex implements storage.VectorIndex by scanning the document
// keyspace. It shares the backend with DocumentRepository, so the default
// embedded deployment needs no separate vector store.
type VectorIndex struct {
	backend *Backend
	repo    *DocumentRepository
}

var _ storage.VectorIndex = (*VectorIndex)(nil)

// NewVectorIndex creates a vector index over the backend's documents.
func NewVectorIndex(backend *Backend) *VectorIndex {
	return &VectorIndex{
		backend: backend,
		repo:    NewDocumentRepository(backend),
	}
}

// IndexDocuments stores the documents, vectors included. Documents without
// vectors are skipped; they can never match a query.
func (v *VectorIndex) IndexDocuments(ctx context.Context, docs ...*core.Document) error {
	withVectors := make([]*core.Document, 0, len(docs))
	for _, doc := range docs {
		if len(doc.Vector) == 0 {
			continue
		}
		withVectors = append(withVectors, doc)
	}
	if len(withVectors) == 0 {
		return nil
	}
	return v.repo.PutDocuments(ctx, withVectors...)
}

// Query finds documents similar to the given vector within a namespace.
func (v *VectorIndex) Query(ctx context.Context, ns core.Namespace, vector []float32, topK int) ([]*core.VectorMatch, error) {
	if len(vector) == 0 || topK <= 0 {
		return nil, storage.ErrInvalidQuery
	}
	return v.backend.FindSimilar(ctx, ns, vector, topK)
}

// RemoveDocuments removes documents from the index. Missing IDs are ignored.
func (v *VectorIndex) RemoveDocuments(ctx context.Context, ns core.Namespace, ids ...string) error {
	return v.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			if err := tx.Delete(makeDocumentKey(ns, id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Close is a no-op; the backend owns the database handle.
func (v *VectorIndex) Close() error {
	return nil
}
