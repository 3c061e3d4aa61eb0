package redis

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/poiesic/nyaya/core"
	"github.com/poiesic/nyaya/storage"
)

func TestVectorToBytes(t *testing.T) {
	blob := vectorToBytes([]float32{1.0, 0.5})
	require.Len(t, blob, 8)

	first := binary.LittleEndian.Uint32([]byte(blob)[:4])
	assert.Equal(t, uint32(0x3f800000), first) // IEEE 754 for 1.0
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "lexvec-acts", indexName(core.NamespaceActs))
	assert.Equal(t, "lexvec:judgments:", keyPrefix(core.NamespaceJudgments))
	assert.Equal(t, "lexvec:acts:a1", documentKey(core.NamespaceActs, "a1"))
}

func TestContainsIgnoreCase(t *testing.T) {
	tests := []struct {
		s, sub string
		want   bool
	}{
		{"Index Already Exists", "index already exists", true},
		{"UNKNOWN INDEX NAME", "unknown index name", true},
		{"hello world", "world", true},
		{"short", "longer than input", false},
		{"exact", "exact", true},
		{"notempty", "", true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, containsIgnoreCase(tc.s, tc.sub), "%q / %q", tc.s, tc.sub)
	}
}

func TestQueryInvalidArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	idx := newIndexForTest(mock.NewClient(ctrl), 3)

	_, err := idx.Query(context.Background(), core.NamespaceActs, nil, 10)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)

	_, err = idx.Query(context.Background(), core.NamespaceActs, []float32{1, 0, 0}, 0)
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

func TestQueryParsesMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	doc1, err := storage.MarshalDocument(&core.Document{
		ID: "a1", Content: "Section 302 IPC", Namespace: core.NamespaceActs,
	})
	require.NoError(t, err)
	doc2, err := storage.MarshalDocument(&core.Document{
		ID: "a2", Content: "Article 14", Namespace: core.NamespaceActs,
	})
	require.NoError(t, err)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH" && cmd[1] == indexName(core.NamespaceActs)
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(2),
			mock.RedisString("lexvec:acts:a1"),
			mock.RedisArray(
				mock.RedisString("doc"), mock.RedisString(string(doc1)),
				mock.RedisString("__vector_score"), mock.RedisString("0.1"),
			),
			mock.RedisString("lexvec:acts:a2"),
			mock.RedisArray(
				mock.RedisString("doc"), mock.RedisString(string(doc2)),
				mock.RedisString("__vector_score"), mock.RedisString("0.4"),
			),
		)))

	idx := newIndexForTest(c, 3)
	matches, err := idx.Query(context.Background(), core.NamespaceActs, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "a1", matches[0].Document.ID)
	assert.InDelta(t, 0.9, matches[0].Score, 1e-9)
	assert.Equal(t, "a2", matches[1].Document.ID)
	assert.InDelta(t, 0.6, matches[1].Score, 1e-9)
}

func TestQueryEmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(mock.RedisInt64(0))))

	idx := newIndexForTest(c, 3)
	matches, err := idx.Query(context.Background(), core.NamespaceActs, []float32{1, 0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestQueryClampsOutOfRangeDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	doc, err := storage.MarshalDocument(&core.Document{
		ID: "j1", Content: "far", Namespace: core.NamespaceJudgments,
	})
	require.NoError(t, err)

	c.EXPECT().
		Do(gomock.Any(), mock.MatchFn(func(cmd []string) bool {
			return cmd[0] == "FT.SEARCH"
		})).
		Return(mock.Result(mock.RedisArray(
			mock.RedisInt64(1),
			mock.RedisString("lexvec:judgments:j1"),
			mock.RedisArray(
				mock.RedisString("doc"), mock.RedisString(string(doc)),
				mock.RedisString("__vector_score"), mock.RedisString("1.7"),
			),
		)))

	idx := newIndexForTest(c, 3)
	matches, err := idx.Query(context.Background(), core.NamespaceJudgments, []float32{0, 1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Zero(t, matches[0].Score)
}

func TestRemoveDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := mock.NewClient(ctrl)

	c.EXPECT().
		Do(gomock.Any(), mock.Match("DEL", "lexvec:acts:a1", "lexvec:acts:a2")).
		Return(mock.Result(mock.RedisInt64(2)))

	idx := newIndexForTest(c, 3)
	require.NoError(t, idx.RemoveDocuments(context.Background(), core.NamespaceActs, "a1", "a2"))

	// No IDs means no round-trip.
	require.NoError(t, idx.RemoveDocuments(context.Background(), core.NamespaceActs))
}

func TestIndexDocumentsSkipsVectorless(t *testing.T) {
	ctrl := gomock.NewController(t)
	idx := newIndexForTest(mock.NewClient(ctrl), 3)

	// No DoMulti expectation: a vectorless batch must not touch Redis.
	err := idx.IndexDocuments(context.Background(), &core.Document{
		ID: "a1", Content: "no vector", Namespace: core.NamespaceActs,
	})
	require.NoError(t, err)
}
