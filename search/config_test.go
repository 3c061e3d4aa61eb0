package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.4, cfg.SemanticWeight)
	assert.Equal(t, 0.3, cfg.KeywordWeight)
	assert.Equal(t, 0.3, cfg.MetadataWeight)
	assert.Equal(t, 20, cfg.SemanticTopK)
	assert.Equal(t, 15, cfg.KeywordTopK)
	assert.Equal(t, 0.1, cfg.MinKeywordScore)
	assert.True(t, cfg.EnableMetadataFiltering)
	assert.True(t, cfg.EnableReranking)
	assert.True(t, cfg.RecencyBoost)
	assert.Equal(t, 0.1, cfg.DiversityFactor)
	assert.Equal(t, 365.0, cfg.RecencyDecayDays)
}

func TestLoadConfig(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "search.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("partial file overlays defaults", func(t *testing.T) {
		path := writeConfig(t, "semantic_weight: 0.6\nrecency_boost: false\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 0.6, cfg.SemanticWeight)
		assert.False(t, cfg.RecencyBoost)
		// Untouched fields keep their defaults.
		assert.Equal(t, 0.3, cfg.KeywordWeight)
		assert.Equal(t, 20, cfg.SemanticTopK)
		assert.True(t, cfg.EnableReranking)
	})

	t.Run("full override", func(t *testing.T) {
		path := writeConfig(t, `
semantic_weight: 0.5
keyword_weight: 0.25
metadata_weight: 0.25
semantic_top_k: 50
keyword_top_k: 40
min_keyword_score: 0.2
enable_metadata_filtering: false
enable_reranking: false
recency_boost: false
diversity_factor: 0.3
recency_decay_days: 730
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 0.5, cfg.SemanticWeight)
		assert.Equal(t, 50, cfg.SemanticTopK)
		assert.Equal(t, 0.3, cfg.DiversityFactor)
		assert.Equal(t, 730.0, cfg.RecencyDecayDays)
		assert.False(t, cfg.EnableMetadataFiltering)
	})

	t.Run("missing file returns error with defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "semantic_weight: [not a number\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
