package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Provider is one named tier in an embedding fallback chain.
type Provider struct {
	Name     string
	Embedder Embedder
}

// Chain tries an ordered list of embedding providers until one succeeds.
//
// Degraded remote services are an expected condition, not exceptional
// control flow: each tier returns a plain error, failures are logged at
// warn, and the next tier is attempted. Only when every tier fails does the
// chain return ErrAllProvidersFailed, which callers map to their own
// lowest-fidelity fallback.
type Chain struct {
	providers []Provider
	logger    *slog.Logger
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ChainOption {
	return func(c *Chain) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewChain creates a chain over the given providers, attempted in order.
// A chain with no providers is valid and fails every request with
// ErrNoProviders.
func NewChain(providers []Provider, opts ...ChainOption) *Chain {
	c := &Chain{
		providers: providers,
		logger:    slog.Default().With("component", "embedder-chain"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Embedder = (*Chain)(nil)

// EmbedText embeds a single text through the first healthy provider.
func (c *Chain) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if len(c.providers) == 0 {
		return nil, ErrNoProviders
	}
	for _, p := range c.providers {
		vec, err := p.Embedder.EmbedText(ctx, text)
		if err != nil {
			c.logger.Warn("embedding provider failed, trying next tier",
				"provider", p.Name, "err", err)
			continue
		}
		return vec, nil
	}
	return nil, ErrAllProvidersFailed
}

// EmbedTexts embeds a batch through the first healthy provider.
func (c *Chain) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(c.providers) == 0 {
		return nil, ErrNoProviders
	}
	for _, p := range c.providers {
		vecs, err := p.Embedder.EmbedTexts(ctx, texts)
		if err != nil {
			c.logger.Warn("embedding provider failed, trying next tier",
				"provider", p.Name, "count", len(texts), "err", err)
			continue
		}
		return vecs, nil
	}
	return nil, ErrAllProvidersFailed
}

// breakerEmbedder wraps an Embedder in a circuit breaker so a flapping
// remote service fails fast instead of adding request latency on every
// search while it is down.
type breakerEmbedder struct {
	inner  Embedder
	single *gobreaker.CircuitBreaker[[]float32]
	batch  *gobreaker.CircuitBreaker[[][]float32]
}

// WithBreaker decorates an embedder with a circuit breaker. The breaker
// opens after 5 consecutive failures and probes again after 30 seconds.
func WithBreaker(inner Embedder, name string) Embedder {
	trip := func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 5
	}
	return &breakerEmbedder{
		inner: inner,
		single: gobreaker.NewCircuitBreaker[[]float32](gobreaker.Settings{
			Name:        name,
			Timeout:     30 * time.Second,
			ReadyToTrip: trip,
		}),
		batch: gobreaker.NewCircuitBreaker[[][]float32](gobreaker.Settings{
			Name:        name + "-batch",
			Timeout:     30 * time.Second,
			ReadyToTrip: trip,
		}),
	}
}

func (b *breakerEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return b.single.Execute(func() ([]float32, error) {
		return b.inner.EmbedText(ctx, text)
	})
}

func (b *breakerEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return b.batch.Execute(func() ([][]float32, error) {
		return b.inner.EmbedTexts(ctx, texts)
	})
}
