package filter

import (
	"testing"

	"github.com/poiesic/nyaya/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestFilterMatches(t *testing.T) {
	meta := core.Metadata{
		"legal_domain":   "Criminal",
		"section_number": "302",
		"year":           2023,
		"act_name":       "Indian Penal Code",
		"court": map[string]any{
			"type": "supreme_court",
		},
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{
			"eq case-insensitive",
			Filter{Field: "legal_domain", Operator: OpEquals, Value: "criminal"},
			true,
		},
		{
			"eq mismatch",
			Filter{Field: "legal_domain", Operator: OpEquals, Value: "civil"},
			false,
		},
		{
			"eq on missing field",
			Filter{Field: "jurisdiction", Operator: OpEquals, Value: "delhi"},
			false,
		},
		{
			"in membership",
			Filter{Field: "section_number", Operator: OpIn, Value: []string{"302", "304"}},
			true,
		},
		{
			"in no membership",
			Filter{Field: "section_number", Operator: OpIn, Value: []string{"14"}},
			false,
		},
		{
			"in with scalar value degrades to eq",
			Filter{Field: "section_number", Operator: OpIn, Value: "302"},
			true,
		},
		{
			"contains",
			Filter{Field: "act_name", Operator: OpContains, Value: "penal code"},
			true,
		},
		{
			"contains mismatch",
			Filter{Field: "act_name", Operator: OpContains, Value: "evidence"},
			false,
		},
		{
			"range inside",
			Filter{Field: "year", Operator: OpRange, Value: Range{Min: floatPtr(2020), Max: floatPtr(2025)}},
			true,
		},
		{
			"range below min",
			Filter{Field: "year", Operator: OpRange, Value: Range{Min: floatPtr(2024)}},
			false,
		},
		{
			"range above max",
			Filter{Field: "year", Operator: OpRange, Value: Range{Max: floatPtr(2022)}},
			false,
		},
		{
			"range unbounded",
			Filter{Field: "year", Operator: OpRange, Value: Range{}},
			true,
		},
		{
			"range on non-numeric field",
			Filter{Field: "act_name", Operator: OpRange, Value: Range{Min: floatPtr(1)}},
			false,
		},
		{
			"regex",
			Filter{Field: "act_name", Operator: OpRegex, Value: `penal\s+code`},
			true,
		},
		{
			"invalid regex matches nothing",
			Filter{Field: "act_name", Operator: OpRegex, Value: `penal(`},
			false,
		},
		{
			"nested field path",
			Filter{Field: "court.type", Operator: OpEquals, Value: "supreme_court"},
			true,
		},
		{
			"unknown operator",
			Filter{Field: "legal_domain", Operator: Operator("lt"), Value: "x"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(meta))
		})
	}
}

func TestApply(t *testing.T) {
	criminal := &core.Document{
		ID: "d1", Content: "murder", Namespace: core.NamespaceActs,
		Metadata: core.Metadata{"legal_domain": "criminal", "section_number": "302"},
	}
	civil := &core.Document{
		ID: "d2", Content: "contract", Namespace: core.NamespaceActs,
		Metadata: core.Metadata{"legal_domain": "civil"},
	}

	t.Run("non-matching documents are dropped", func(t *testing.T) {
		scored := Apply([]*core.Document{criminal, civil}, []Filter{
			{Field: "legal_domain", Operator: OpEquals, Value: "criminal", Boost: 2.0},
		})

		require.Len(t, scored, 1)
		assert.Equal(t, "d1", scored[0].Document.ID)
		assert.Equal(t, 2.0, scored[0].Score)
	})

	t.Run("multi-facet bonus", func(t *testing.T) {
		scored := Apply([]*core.Document{criminal}, []Filter{
			{Field: "legal_domain", Operator: OpEquals, Value: "criminal", Boost: 2.0},
			{Field: "section_number", Operator: OpIn, Value: []string{"302"}, Boost: 3.0},
		})

		require.Len(t, scored, 1)
		// (2.0 + 3.0) * (1 + 0.1*(2-1))
		assert.InDelta(t, 5.5, scored[0].Score, 1e-9)
	})

	t.Run("sorted descending", func(t *testing.T) {
		scored := Apply([]*core.Document{civil, criminal}, []Filter{
			{Field: "legal_domain", Operator: OpEquals, Value: "criminal", Boost: 2.0},
			{Field: "legal_domain", Operator: OpEquals, Value: "civil", Boost: 1.0},
		})

		require.Len(t, scored, 2)
		assert.Equal(t, "d1", scored[0].Document.ID)
		assert.Equal(t, "d2", scored[1].Document.ID)
	})

	t.Run("empty filter list passes everything through unscored", func(t *testing.T) {
		scored := Apply([]*core.Document{criminal, civil}, nil)
		assert.Len(t, scored, 2)
		assert.Zero(t, scored[0].Score)
	})
}

func TestStatistics(t *testing.T) {
	docs := []*core.Document{
		{ID: "d1", Content: "x", Namespace: core.NamespaceActs,
			Metadata: core.Metadata{"legal_domain": "criminal"}},
		{ID: "d2", Content: "y", Namespace: core.NamespaceActs,
			Metadata: core.Metadata{"legal_domain": "civil"}},
	}
	filters := []Filter{
		{Field: "legal_domain", Operator: OpEquals, Value: "criminal", Boost: 2.0},
	}

	stats := Statistics(docs, filters)
	assert.Equal(t, 2, stats.TotalDocuments)
	assert.Equal(t, 1, stats.FiltersApplied)
	assert.Equal(t, 1, stats.DocumentsMatched)
	assert.Equal(t, 2.0, stats.AverageScore)
	assert.Equal(t, 1, stats.MatchesPerField["legal_domain"])
}
