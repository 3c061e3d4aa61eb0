// Package ingestion provides pipeline orchestration for loading legal
// documents into the retrieval stores.
//
// The Pipeline type manages the ingestion workflow, including:
//   - Validating documents and assigning content-hash IDs
//   - Persisting documents to the repository
//   - Generating embeddings and indexing vectors asynchronously
//
// Embedding runs concurrently on a worker pool; errors during async
// processing are logged but do not fail the ingestion operation.
//
// The Reindexer type re-embeds a stored namespace in checkpointed batches,
// for use after an embedding-model change.
package ingestion
