package nyaya

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/nyaya/ai"
	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/search"
)

// offlineConfig disables both embedding tiers so tests never touch the
// network; search degrades to its keyword-overlap fallback.
func offlineConfig() *ai.Config {
	return ai.NewConfig(ai.WithRemoteAPIKey(""), ai.WithLocalHost(""))
}

func openTestLibrary(t *testing.T, opts ...LibraryOption) *Library {
	t.Helper()
	opts = append([]LibraryOption{WithInMemory(), WithAIConfig(offlineConfig())}, opts...)
	lib, err := Open("", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestOpen(t *testing.T) {
	t.Run("in-memory library", func(t *testing.T) {
		lib := openTestLibrary(t)
		assert.NotNil(t, lib.Engine())
		assert.NotNil(t, lib.DocumentRepository())
		assert.NotNil(t, lib.CheckpointRepository())
		assert.NotNil(t, lib.VectorIndex())
	})

	t.Run("custom search config", func(t *testing.T) {
		cfg := search.DefaultConfig()
		cfg.SemanticWeight = 0.7
		lib := openTestLibrary(t, WithSearchConfig(cfg))
		assert.Equal(t, 0.7, lib.Engine().Config().SemanticWeight)
	})
}

func TestLibrarySearchRoundTrip(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	pipeline, err := lib.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	require.NoError(t, pipeline.Ingest(ctx,
		&core.Document{
			Content:   "Section 302 IPC prescribes punishment for murder",
			Namespace: core.NamespaceActs,
			Metadata:  core.Metadata{"legal_domain": "criminal", "year": 2023},
		},
		&core.Document{
			Content:   "Article 14 guarantees equality before the law",
			Namespace: core.NamespaceActs,
			Metadata:  core.Metadata{"legal_domain": "constitutional", "year": 2024},
		},
	))

	results := lib.Search(ctx, "murder punishment under IPC", 10)
	require.NotEmpty(t, results)
	assert.Contains(t, results[0].Document.Content, "murder")
}

func TestLibrarySearchInfersFilters(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	pipeline, err := lib.NewIngestionPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	require.NoError(t, pipeline.Ingest(ctx,
		&core.Document{
			Content:   "anticipatory bail under criminal procedure",
			Namespace: core.NamespaceJudgments,
			Metadata:  core.Metadata{"legal_domain": "criminal"},
		},
		&core.Document{
			Content:   "bail bond forfeiture in civil recovery proceedings",
			Namespace: core.NamespaceJudgments,
			Metadata:  core.Metadata{"legal_domain": "civil"},
		},
	))

	// "criminal" in the query infers a legal_domain filter; the civil
	// document is filtered out entirely.
	results := lib.Search(ctx, "criminal bail provisions", 10)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, "criminal", r.Document.Metadata["legal_domain"])
	}
}

func TestLibraryWarmsCorpusOnOpen(t *testing.T) {
	ctx := context.Background()
	lib := openTestLibrary(t)

	// Write directly to storage, bypassing the pipeline.
	require.NoError(t, lib.DocumentRepository().PutDocuments(ctx, &core.Document{
		ID:        "d1",
		Content:   "already stored statute text",
		Namespace: core.NamespaceActs,
	}))

	// A fresh engine over the same backend must pick the document up.
	require.NoError(t, lib.warmCorpus(ctx))

	results := lib.Search(ctx, "stored statute", 10)
	require.NotEmpty(t, results)
	assert.Equal(t, "d1", results[0].Document.ID)
}

func TestLibraryReindexerRequiresEmbedder(t *testing.T) {
	lib := openTestLibrary(t)

	_, err := lib.NewReindexer(nil, nil)
	assert.Error(t, err)
}
