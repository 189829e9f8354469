package embedding

import "errors"

var (
	// ErrInvalidModel indicates an unsupported embedding model name.
	ErrInvalidModel = errors.New("embedding: unsupported model")
	// ErrEmbedFailed indicates the underlying model failed to produce
	// vectors.
	ErrEmbedFailed = errors.New("embedding: inference failed")
)
