// Package redis implements storage.VectorIndex on Redis 8+ with RediSearch.
//
// Each namespace gets its own FT index over HASH keys. Documents are stored
// as a JSON payload alongside a FLOAT32 vector blob, and queries run as KNN
// searches over an HNSW index with cosine distance. Use this backend instead
// of the embedded badger scan when the corpus outgrows linear search.
package redis
