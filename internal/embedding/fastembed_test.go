package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFastEmbedProvider_UnknownModel(t *testing.T) {
	_, err := NewFastEmbedProvider(FastEmbedConfig{Model: "not-a-model"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidModel)
}

func TestFastEmbedProvider_ModelNameAndDimension(t *testing.T) {
	p := &FastEmbedProvider{modelName: DefaultModel, dimension: 384}

	assert.Equal(t, DefaultModel, p.ModelName())
	assert.Equal(t, 384, p.Dimension())
}

func TestFastEmbedProvider_EmbedEmptyBatch(t *testing.T) {
	p := &FastEmbedProvider{}

	vectors, err := p.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}

func TestFastEmbedProvider_CloseWithoutModel(t *testing.T) {
	p := &FastEmbedProvider{}

	assert.NoError(t, p.Close())
}
