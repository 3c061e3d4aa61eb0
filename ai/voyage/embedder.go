package voyage

import (
	"context"
	"log/slog"

	"github.com/poiesic/nyaya/ai"
	"github.com/tmc/langchaingo/embeddings/voyageai"
)

// Embedder implements ai.Embedder using the Voyage AI embedding API.
// The default model, voyage-law-2, is tuned for legal text and matches the
// 1024-dimension vectors the document indexes are built with.
type Embedder struct {
	embedder *voyageai.VoyageAI
	logger   *slog.Logger
}

// NewEmbedder creates a remote embedder from the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	emb, err := voyageai.NewVoyageAI(
		voyageai.WithModel(config.RemoteModel),
		voyageai.WithToken(config.RemoteAPIKey),
	)
	if err != nil {
		return nil, err
	}

	return &Embedder{
		embedder: emb,
		logger:   slog.Default().With("component", "voyage-embedder"),
	}, nil
}

// EmbedText generates a vector embedding for a single text string.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	e.logger.Debug("generating remote embedding", "length", len(text))

	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		e.logger.Error("failed to generate remote embedding", "err", err)
		return nil, err
	}
	return vec, nil
}

// EmbedTexts generates vector embeddings for multiple text strings in a batch.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("generating remote embeddings", "count", len(texts))

	vecs, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to generate remote embeddings", "count", len(texts), "err", err)
		return nil, err
	}
	return vecs, nil
}
