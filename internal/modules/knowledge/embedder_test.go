package knowledge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestHashEmbedder(t *testing.T) {
	e := NewHashEmbedder()

	vectors, err := e.Embed(context.Background(), []string{"Bitcoin, bitcoin!", "bitcoin", ""})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	for _, v := range vectors {
		assert.Len(t, v, HashEmbedderDimension)
	}

	assert.InDelta(t, 1.0, floats.Norm(vectors[0], 2), 1e-12)
	assert.InDeltaSlice(t, vectors[1], vectors[0], 1e-12)
	assert.Equal(t, 0.0, floats.Norm(vectors[2], 2))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"open", "source", "blockchain", "2024"}, tokenize("Open-Source blockchain, 2024."))
}
