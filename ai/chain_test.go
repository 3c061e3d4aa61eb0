package ai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/nyaya/ai"
	"github.com/poiesic/nyaya/ai/mock"
)

func TestChainEmptyProviders(t *testing.T) {
	chain := ai.NewChain(nil)

	_, err := chain.EmbedText(context.Background(), "query")
	assert.ErrorIs(t, err, ai.ErrNoProviders)

	_, err = chain.EmbedTexts(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, ai.ErrNoProviders)
}

func TestChainFirstProviderWins(t *testing.T) {
	primary := mock.NewMockEmbedder()
	secondary := mock.NewMockEmbedder()

	chain := ai.NewChain([]ai.Provider{
		{Name: "primary", Embedder: primary},
		{Name: "secondary", Embedder: secondary},
	})

	vec, err := chain.EmbedText(context.Background(), "habeas corpus")
	require.NoError(t, err)
	assert.NotEmpty(t, vec)
	assert.Equal(t, 1, primary.CallCount())
	assert.Equal(t, 0, secondary.CallCount())
}

func TestChainFallsBackOnFailure(t *testing.T) {
	failing := mock.NewMockEmbedder()
	failing.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("service unavailable")
	}
	fallback := mock.NewMockEmbedder()

	chain := ai.NewChain([]ai.Provider{
		{Name: "remote", Embedder: failing},
		{Name: "local", Embedder: fallback},
	})

	vec, err := chain.EmbedText(context.Background(), "habeas corpus")
	require.NoError(t, err)
	assert.NotEmpty(t, vec)
	assert.Equal(t, 1, failing.CallCount())
	assert.Equal(t, 1, fallback.CallCount())
}

func TestChainAllProvidersFailed(t *testing.T) {
	boom := func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("down")
	}
	first := mock.NewMockEmbedder()
	first.EmbedTextFunc = boom
	second := mock.NewMockEmbedder()
	second.EmbedTextFunc = boom

	chain := ai.NewChain([]ai.Provider{
		{Name: "first", Embedder: first},
		{Name: "second", Embedder: second},
	})

	_, err := chain.EmbedText(context.Background(), "query")
	assert.ErrorIs(t, err, ai.ErrAllProvidersFailed)
}

func TestChainBatchFallback(t *testing.T) {
	failing := mock.NewMockEmbedder()
	failing.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("rate limited")
	}
	fallback := mock.NewMockEmbedder()

	chain := ai.NewChain([]ai.Provider{
		{Name: "remote", Embedder: failing},
		{Name: "local", Embedder: fallback},
	})

	vecs, err := chain.EmbedTexts(context.Background(), []string{"one", "two", "three"})
	require.NoError(t, err)
	assert.Len(t, vecs, 3)
}

func TestWithBreaker(t *testing.T) {
	t.Run("passes through success", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		wrapped := ai.WithBreaker(inner, "test")

		vec, err := wrapped.EmbedText(context.Background(), "query")
		require.NoError(t, err)
		assert.NotEmpty(t, vec)
	})

	t.Run("opens after consecutive failures", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		inner.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("down")
		}
		wrapped := ai.WithBreaker(inner, "test")

		for i := 0; i < 5; i++ {
			_, err := wrapped.EmbedText(context.Background(), "query")
			require.Error(t, err)
		}
		calls := inner.CallCount()

		// Breaker is open now; inner must not be reached again.
		_, err := wrapped.EmbedText(context.Background(), "query")
		require.Error(t, err)
		assert.Equal(t, calls, inner.CallCount())
	})

	t.Run("single and batch breakers are independent", func(t *testing.T) {
		inner := mock.NewMockEmbedder()
		inner.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, errors.New("down")
		}
		wrapped := ai.WithBreaker(inner, "test")

		for i := 0; i < 6; i++ {
			_, _ = wrapped.EmbedText(context.Background(), "query")
		}

		// Batch path still works even with the single path tripped.
		vecs, err := wrapped.EmbedTexts(context.Background(), []string{"a"})
		require.NoError(t, err)
		assert.Len(t, vecs, 1)
	})
}
