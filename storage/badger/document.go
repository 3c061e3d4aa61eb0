package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/storage"
)

// DocumentRepository implements storage.DocumentRepository for BadgerDB.
type DocumentRepository struct {
	backend *Backend
}

var _ storage.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new DocumentRepository on the backend.
func NewDocumentRepository(backend *Backend) *DocumentRepository {
	return &DocumentRepository{
		backend: backend,
	}
}

// Close is a no-op; the backend owns the database handle.
func (r *DocumentRepository) Close() error {
	return nil
}

// PutDocuments stores one or more documents, replacing existing ones.
func (r *DocumentRepository) PutDocuments(ctx context.Context, docs ...*core.Document) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			value, err := storage.MarshalDocument(doc)
			if err != nil {
				return err
			}
			key := makeDocumentKey(doc.Namespace, doc.ID)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetDocument retrieves a single document by namespace and ID.
func (r *DocumentRepository) GetDocument(ctx context.Context, ns core.Namespace, id string) (*core.Document, error) {
	var doc *core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		doc, err = readDocument(tx, makeDocumentKey(ns, id))
		if err != nil {
			return err
		}
		if doc == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GetDocuments retrieves multiple documents by their IDs.
// Missing documents are skipped without error.
func (r *DocumentRepository) GetDocuments(ctx context.Context, ns core.Namespace, ids ...string) ([]*core.Document, error) {
	var docs []*core.Document
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			doc, err := readDocument(tx, makeDocumentKey(ns, id))
			if err != nil {
				return err
			}
			if doc != nil {
				docs = append(docs, doc)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// DeleteDocuments removes documents by their IDs.
func (r *DocumentRepository) DeleteDocuments(ctx context.Context, ns core.Namespace, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeDocumentKey(ns, id)
			if _, err := tx.Get(key); err != nil {
				if err == badger.ErrKeyNotFound {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListDocuments retrieves every document in a namespace, in key order.
func (r *DocumentRepository) ListDocuments(ctx context.Context, ns core.Namespace) ([]*core.Document, error) {
	return r.ListAfter(ctx, ns, "", 0)
}

// ListAfter retrieves up to limit documents with ID greater than afterID.
// A limit of 0 means no limit.
func (r *DocumentRepository) ListAfter(ctx context.Context, ns core.Namespace, afterID string, limit int) ([]*core.Document, error) {
	var docs []*core.Document
	prefix := makeNamespacePrefix(ns)
	seek := prefix
	if afterID != "" {
		seek = makeDocumentKey(ns, afterID)
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(seek); iter.Valid(); iter.Next() {
			item := iter.Item()
			// Seek lands on afterID itself; skip it.
			if afterID != "" && string(item.Key()) == string(seek) {
				continue
			}

			var doc *core.Document
			err := item.Value(func(val []byte) error {
				var err error
				doc, err = storage.UnmarshalDocument(val)
				return err
			})
			if err != nil {
				return err
			}
			docs = append(docs, doc)

			if limit > 0 && len(docs) >= limit {
				return nil
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// CountDocuments returns the number of documents in a namespace.
func (r *DocumentRepository) CountDocuments(ctx context.Context, ns core.Namespace) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeNamespacePrefix(ns)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// readDocument reads and unmarshals a document by key.
// Returns nil, nil when the key does not exist.
func readDocument(tx *badger.Txn, key []byte) (*core.Document, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var doc *core.Document
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		doc, unmarshalErr = storage.UnmarshalDocument(val)
		return unmarshalErr
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}
