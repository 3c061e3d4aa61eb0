package lexical

import (
	"testing"

	"github.com/poiesic/nyaya/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpusDocs() []*core.Document {
	return []*core.Document{
		{
			ID:        "d1",
			Content:   "Section 302 IPC murder punishment life imprisonment",
			Namespace: core.NamespaceActs,
			Metadata:  core.Metadata{"year": 2023},
		},
		{
			ID:        "d2",
			Content:   "Article 14 equality before law",
			Namespace: core.NamespaceActs,
			Metadata:  core.Metadata{"year": 2024},
		},
	}
}

func TestIndexSearch_RanksSharedTokensHigher(t *testing.T) {
	idx := NewIndex()
	idx.AddDocuments(corpusDocs())

	results := idx.Search("murder punishment under IPC", 10, 0)
	require.NotEmpty(t, results)

	assert.Equal(t, "d1", results[0].Document.ID)
	assert.Equal(t, core.SearchTypeKeyword, results[0].SearchType)
	assert.Positive(t, results[0].KeywordScore)
	if len(results) > 1 {
		assert.Greater(t, results[0].KeywordScore, results[1].KeywordScore)
	}
}

func TestIndexSearch_EmptyCorpus(t *testing.T) {
	idx := NewIndex()
	idx.AddDocuments(nil)

	assert.Empty(t, idx.Search("anything", 10, 0))
	assert.Zero(t, idx.Size())
}

func TestIndexSearch_EmptyQuery(t *testing.T) {
	idx := NewIndex()
	idx.AddDocuments(corpusDocs())

	// Tokenizes to nothing; every document scores zero. With a positive
	// cutoff nothing is returned, and nothing panics.
	assert.Empty(t, idx.Search("", 10, 0.1))
}

func TestIndexSearch_MinScoreCutoff(t *testing.T) {
	idx := NewIndex()
	idx.AddDocuments(corpusDocs())

	results := idx.Search("murder", 10, 1000.0)
	assert.Empty(t, results)
}

func TestIndexSearch_TopKTruncation(t *testing.T) {
	idx := NewIndex()
	idx.AddDocuments([]*core.Document{
		{ID: "a", Content: "murder trial evidence", Namespace: core.NamespaceJudgments},
		{ID: "b", Content: "murder appeal verdict", Namespace: core.NamespaceJudgments},
		{ID: "c", Content: "murder conviction sentence", Namespace: core.NamespaceJudgments},
	})

	results := idx.Search("murder", 2, 0)
	assert.Len(t, results, 2)
}

func TestAddDocuments_Idempotent(t *testing.T) {
	idx := NewIndex()

	idx.AddDocuments(corpusDocs())
	first := idx.Search("murder punishment under IPC", 10, 0)

	idx.AddDocuments(corpusDocs())
	second := idx.Search("murder punishment under IPC", 10, 0)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Document.ID, second[i].Document.ID)
		assert.InDelta(t, first[i].KeywordScore, second[i].KeywordScore, 1e-12)
	}
}

func TestSearchableText_IncludesMetadataFields(t *testing.T) {
	idx := NewIndex()
	idx.AddDocuments([]*core.Document{
		{
			ID:        "d1",
			Content:   "maintenance obligations",
			Namespace: core.NamespaceActs,
			Metadata: core.Metadata{
				"title":          "Maintenance of wives and children",
				"act_name":       "Criminal Procedure Code",
				"section_number": "125",
				"court_type":     "family_court",
				"keywords":       []any{"maintenance", "alimony"},
			},
		},
		{
			ID:        "d2",
			Content:   "transfer of immovable property",
			Namespace: core.NamespaceActs,
		},
	})

	// "alimony" only occurs in d1's keyword metadata.
	results := idx.Search("alimony", 10, 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "d1", results[0].Document.ID)

	// Section number is indexed as "Section 125".
	results = idx.Search("section 125", 10, 0)
	require.NotEmpty(t, results)
	assert.Equal(t, "d1", results[0].Document.ID)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"section", "302", "ipc", "life", "imprisonment"},
		Tokenize("Section-302, IPC: life imprisonment!"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("?!..."))
}
