package search

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the fusion engine tuning parameters.
//
// Weights must be non-negative but need not sum to 1; the engine does not
// renormalize and does not validate them. Behavior with negative weights is
// undefined; callers are expected to supply sane values.
type Config struct {
	// SemanticWeight scales the vector-similarity channel.
	SemanticWeight float64 `yaml:"semantic_weight"`
	// KeywordWeight scales the lexical channel.
	KeywordWeight float64 `yaml:"keyword_weight"`
	// MetadataWeight scales the metadata-facet channel.
	MetadataWeight float64 `yaml:"metadata_weight"`

	// SemanticTopK caps the merged semantic candidate list.
	SemanticTopK int `yaml:"semantic_top_k"`
	// KeywordTopK caps the lexical candidate list.
	KeywordTopK int `yaml:"keyword_top_k"`

	// MinKeywordScore drops lexical hits scoring below it.
	MinKeywordScore float64 `yaml:"min_keyword_score"`

	// EnableMetadataFiltering turns the hard metadata filter stage on.
	EnableMetadataFiltering bool `yaml:"enable_metadata_filtering"`
	// EnableReranking turns the diversity and query-specific passes on.
	EnableReranking bool `yaml:"enable_reranking"`
	// RecencyBoost turns the document-age multiplier on.
	RecencyBoost bool `yaml:"recency_boost"`

	// DiversityFactor scales the near-duplicate penalty in [0,1].
	DiversityFactor float64 `yaml:"diversity_factor"`
	// RecencyDecayDays is the decay window for documents older than 3 years.
	RecencyDecayDays float64 `yaml:"recency_decay_days"`
}

// DefaultConfig returns the tuned defaults for legal-document retrieval.
func DefaultConfig() Config {
	return Config{
		SemanticWeight:          0.4,
		KeywordWeight:           0.3,
		MetadataWeight:          0.3,
		SemanticTopK:            20,
		KeywordTopK:             15,
		MinKeywordScore:         0.1,
		EnableMetadataFiltering: true,
		EnableReranking:         true,
		RecencyBoost:            true,
		DiversityFactor:         0.1,
		RecencyDecayDays:        365,
	}
}

// LoadConfig reads a YAML config file over the defaults. Fields absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
