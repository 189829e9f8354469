// Package embedding wraps a local sentence-embedding model with an
// optional persistent vector cache.
package embedding

import "context"

// Embedder computes fixed-length vectors for a batch of texts. The output
// holds one vector per input text, in input order, all of the same
// dimensionality. An empty batch yields an empty result and no error.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
