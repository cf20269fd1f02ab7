// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package embed

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyEmbedder struct {
	calls int
	err   error
}

func (f *flakyEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = []float32{1, 0}
	}
	return out, nil
}

func (f *flakyEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{1, 0}, nil
}

func TestBreaker_PassesThrough(t *testing.T) {
	inner := &flakyEmbedder{}
	b := NewBreaker(inner, "test")

	vectors, err := b.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, vectors, 2)

	vec, err := b.EmbedQuery(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0}, vec)
	assert.Equal(t, 2, inner.calls)
}

func TestBreaker_OpensAfterRepeatedFailures(t *testing.T) {
	inner := &flakyEmbedder{err: errors.New("service down")}
	b := NewBreaker(inner, "test")

	for i := 0; i < 3; i++ {
		_, err := b.Embed(context.Background(), []string{"a"})
		require.Error(t, err)
	}
	require.Equal(t, 3, inner.calls)

	// Fourth call fails fast without reaching the embedder.
	_, err := b.Embed(context.Background(), []string{"a"})
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, inner.calls)
}

func TestBreaker_OneCircuitForBothMethods(t *testing.T) {
	inner := &flakyEmbedder{err: errors.New("service down")}
	b := NewBreaker(inner, "test")

	for i := 0; i < 3; i++ {
		_, err := b.Embed(context.Background(), []string{"a"})
		require.Error(t, err)
	}

	// The circuit guards the service, not the method.
	_, err := b.EmbedQuery(context.Background(), "a")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, inner.calls)
}
