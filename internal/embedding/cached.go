package embedding

import (
	"context"
	"fmt"
)

// CachedEmbedder wraps an Embedder with a persistent vector cache. Texts
// with a cache hit skip recomputation; misses are embedded and written back
// best-effort. A nil cache degrades to a pass-through.
type CachedEmbedder struct {
	inner Embedder
	cache Cache
	model string
}

// NewCachedEmbedder returns a caching wrapper around inner. The model name
// participates in the cache key so different models never share entries.
func NewCachedEmbedder(inner Embedder, cache Cache, model string) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, cache: cache, model: model}
}

// Embed implements Embedder.
func (e *CachedEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if e.cache == nil {
		return e.inner.Embed(ctx, texts)
	}

	out := make([][]float32, len(texts))
	var missIdx []int
	var missTexts []string
	for i, text := range texts {
		if vector, ok := e.cache.Get(CacheKey(e.model, text)); ok {
			out[i] = vector
			continue
		}
		missIdx = append(missIdx, i)
		missTexts = append(missTexts, text)
	}

	if len(missTexts) == 0 {
		return out, nil
	}

	vectors, err := e.inner.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(missTexts) {
		return nil, fmt.Errorf("%w: got %d vectors for %d texts", ErrEmbedFailed, len(vectors), len(missTexts))
	}

	for j, i := range missIdx {
		out[i] = vectors[j]
		e.cache.Put(CacheKey(e.model, texts[i]), vectors[j])
	}
	return out, nil
}
