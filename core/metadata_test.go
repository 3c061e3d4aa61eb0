package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadataLookup(t *testing.T) {
	meta := Metadata{
		"legal_domain": "criminal",
		"year":         2023,
		"court": map[string]any{
			"type":  "supreme_court",
			"bench": map[string]any{"size": 5},
		},
		"citations": []any{
			map[string]any{"reporter": "AIR", "page": 120},
			map[string]any{"reporter": "SCC"},
		},
	}

	t.Run("top-level field", func(t *testing.T) {
		assert.Equal(t, "criminal", meta.Lookup("legal_domain"))
	})

	t.Run("nested field", func(t *testing.T) {
		assert.Equal(t, "supreme_court", meta.Lookup("court.type"))
	})

	t.Run("doubly nested field", func(t *testing.T) {
		assert.Equal(t, 5, meta.Lookup("court.bench.size"))
	})

	t.Run("list intermediate returns first element with key", func(t *testing.T) {
		assert.Equal(t, "AIR", meta.Lookup("citations.reporter"))
	})

	t.Run("list intermediate without key", func(t *testing.T) {
		assert.Nil(t, meta.Lookup("citations.court"))
	})

	t.Run("missing field", func(t *testing.T) {
		assert.Nil(t, meta.Lookup("jurisdiction"))
	})

	t.Run("path through scalar", func(t *testing.T) {
		assert.Nil(t, meta.Lookup("legal_domain.sub"))
	})

	t.Run("nil metadata", func(t *testing.T) {
		var m Metadata
		assert.Nil(t, m.Lookup("anything"))
	})

	t.Run("empty path", func(t *testing.T) {
		assert.Nil(t, meta.Lookup(""))
	})
}

func TestMetadataYear(t *testing.T) {
	tests := []struct {
		name   string
		meta   Metadata
		want   int
		wantOK bool
	}{
		{"int year", Metadata{"year": 2023}, 2023, true},
		{"float year from JSON", Metadata{"year": float64(2024)}, 2024, true},
		{"digit string year", Metadata{"year": "2022"}, 2022, true},
		{"date field preferred", Metadata{"date": 2021, "year": 2019}, 2021, true},
		{"unparseable string", Metadata{"year": "twenty twenty"}, 0, false},
		{"missing", Metadata{}, 0, false},
		{"nil metadata", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.meta.Year()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsString(t *testing.T) {
	assert.Equal(t, "302", AsString("302"))
	assert.Equal(t, "302", AsString(302))
	assert.Equal(t, "302", AsString(float64(302)))
	assert.Equal(t, "1.5", AsString(1.5))
	assert.Equal(t, "true", AsString(true))
	assert.Equal(t, "", AsString(nil))
}

func TestAsFloat(t *testing.T) {
	f, ok := AsFloat(2023)
	assert.True(t, ok)
	assert.Equal(t, float64(2023), f)

	f, ok = AsFloat("2023")
	assert.True(t, ok)
	assert.Equal(t, float64(2023), f)

	_, ok = AsFloat("not a number")
	assert.False(t, ok)

	_, ok = AsFloat(nil)
	assert.False(t, ok)
}
