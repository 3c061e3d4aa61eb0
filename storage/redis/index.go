package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/rueidis"

	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/storage"
)

// Config holds connection parameters for a Redis vector index.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int

	// VectorDim is the embedding dimension, fixed at index creation.
	VectorDim int
}

// Index implements storage.VectorIndex on Redis 8+ with RediSearch.
// Each namespace gets its own FT index over HASH keys, with an HNSW vector
// field using cosine distance.
type Index struct {
	client rueidis.Client
	dim    int
	logger *slog.Logger
}

var _ storage.VectorIndex = (*Index)(nil)

// NewIndex connects to Redis and ensures the per-namespace FT indexes exist.
func NewIndex(ctx context.Context, cfg Config) (*Index, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}
	if cfg.VectorDim <= 0 {
		return nil, fmt.Errorf("vector dimension must be positive")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
		AlwaysRESP2:  true, // FT.SEARCH result parsing expects RESP2 array format
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	idx := &Index{
		client: client,
		dim:    cfg.VectorDim,
		logger: slog.Default().With("component", "redis-index"),
	}

	for _, ns := range core.Namespaces() {
		if err := idx.ensureIndex(ctx, ns); err != nil {
			client.Close()
			return nil, err
		}
	}

	return idx, nil
}

// newIndexForTest wraps a pre-built (mock) client without touching Redis.
func newIndexForTest(client rueidis.Client, dim int) *Index {
	return &Index{
		client: client,
		dim:    dim,
		logger: slog.Default().With("component", "redis-index"),
	}
}

// ensureIndex creates the FT index for a namespace if it is missing.
func (x *Index) ensureIndex(ctx context.Context, ns core.Namespace) error {
	cmd := x.client.B().Arbitrary("FT.CREATE").Args(
		indexName(ns),
		"ON", "HASH",
		"PREFIX", "1", keyPrefix(ns),
		"SCHEMA",
		"doc", "TEXT", "NOINDEX",
		"vector", "VECTOR", "HNSW", "6",
		"TYPE", "FLOAT32",
		"DIM", strconv.Itoa(x.dim),
		"DISTANCE_METRIC", "COSINE",
	).Build()

	if err := x.client.Do(ctx, cmd).Error(); err != nil {
		if isRedisErr(err, "index already exists") {
			return nil
		}
		return fmt.Errorf("create index %s: %w", indexName(ns), err)
	}
	return nil
}

// IndexDocuments upserts documents into the namespace hashes.
// Documents without vectors are skipped.
func (x *Index) IndexDocuments(ctx context.Context, docs ...*core.Document) error {
	cmds := make(rueidis.Commands, 0, len(docs))
	for _, doc := range docs {
		if len(doc.Vector) == 0 {
			continue
		}
		payload, err := storage.MarshalDocument(doc)
		if err != nil {
			return err
		}
		cmds = append(cmds, x.client.B().Hset().
			Key(documentKey(doc.Namespace, doc.ID)).
			FieldValue().
			FieldValue("doc", string(payload)).
			FieldValue("vector", vectorToBytes(doc.Vector)).
			Build())
	}
	if len(cmds) == 0 {
		return nil
	}

	for i, resp := range x.client.DoMulti(ctx, cmds...) {
		if err := resp.Error(); err != nil {
			return fmt.Errorf("hset %d: %w", i, err)
		}
	}
	return nil
}

// Query runs a KNN vector similarity search via FT.SEARCH.
func (x *Index) Query(ctx context.Context, ns core.Namespace, vector []float32, topK int) ([]*core.VectorMatch, error) {
	if len(vector) == 0 || topK <= 0 {
		return nil, storage.ErrInvalidQuery
	}

	queryStr := fmt.Sprintf("*=>[KNN %d @vector $BLOB]", topK)
	cmd := x.client.B().Arbitrary("FT.SEARCH").Args(
		indexName(ns), queryStr,
		"RETURN", "2", "doc", "__vector_score",
		"PARAMS", "2", "BLOB", vectorToBytes(vector),
		"DIALECT", "2",
	).Build()

	raw, err := x.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, fmt.Errorf("knn search: %w", err)
	}

	return parseKNNResult(raw)
}

// RemoveDocuments deletes namespace hashes; the FT index follows the keys.
func (x *Index) RemoveDocuments(ctx context.Context, ns core.Namespace, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = documentKey(ns, id)
	}
	cmd := x.client.B().Del().Key(keys...).Build()
	if err := x.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("del: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (x *Index) Close() error {
	x.client.Close()
	return nil
}

// parseKNNResult decodes the RESP2 reply of a KNN FT.SEARCH.
// Layout is 2-stride: [total, key1, fields1, key2, fields2, ...].
func parseKNNResult(raw []rueidis.RedisMessage) ([]*core.VectorMatch, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	matches := make([]*core.VectorMatch, 0, total)
	for i := 1; i+1 < len(raw); i += 2 {
		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}
		pairs := parseFieldPairs(fields)

		payload, ok := pairs["doc"]
		if !ok {
			continue
		}
		doc, err := storage.UnmarshalDocument([]byte(payload))
		if err != nil {
			continue
		}

		match := &core.VectorMatch{Document: doc}
		if scoreStr, ok := pairs["__vector_score"]; ok {
			if dist, err := strconv.ParseFloat(scoreStr, 64); err == nil {
				match.Score = max(0, 1.0-dist) // cosine distance → similarity, clamped to [0,1]
			}
		}
		matches = append(matches, match)
	}

	return matches, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// isRedisErr checks if err is a Redis server error containing substr.
func isRedisErr(err error, substr string) bool {
	re, ok := rueidis.IsRedisErr(err)
	if !ok {
		return false
	}
	return containsIgnoreCase(re.Error(), substr)
}
