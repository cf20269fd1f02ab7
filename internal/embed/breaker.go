// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker wraps an Embedder with a circuit breaker. When the embedding
// service keeps failing, callers get an immediate open-circuit error instead
// of waiting out the HTTP timeout on every request; the circuit re-tries
// after a cool-down.
type Breaker struct {
	inner Embedder
	cb    *gobreaker.CircuitBreaker
}

// NewBreaker wraps inner. The circuit opens after at least 3 requests with a
// failure ratio of 0.6 or more, and half-opens after 30 seconds.
func NewBreaker(inner Embedder, name string) *Breaker {
	st := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	}
	return &Breaker{inner: inner, cb: gobreaker.NewCircuitBreaker(st)}
}

// Embed implements Embedder.
func (b *Breaker) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Embed(ctx, texts)
	})
	if err != nil {
		return nil, err
	}
	return v.([][]float32), nil
}

// EmbedQuery implements Embedder.
func (b *Breaker) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	v, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.EmbedQuery(ctx, query)
	})
	if err != nil {
		return nil, err
	}
	return v.([]float32), nil
}
