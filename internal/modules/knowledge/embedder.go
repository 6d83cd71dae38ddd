package knowledge

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
)

// Embedder turns texts into fixed-length vectors, one per text, in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// HashEmbedderDimension matches the width of the sentence models the index
// was sized for.
const HashEmbedderDimension = 384

// HashEmbedder is a deterministic bag-of-words embedder. Each lower-cased
// token is hashed into one of Dimension buckets and the counts are
// L2-normalized. It needs no network and no model files.
type HashEmbedder struct {
	Dimension int
}

// NewHashEmbedder returns a 384-dimensional hash embedder.
func NewHashEmbedder() *HashEmbedder {
	return &HashEmbedder{Dimension: HashEmbedderDimension}
}

// Embed implements Embedder.
func (e *HashEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		vectors[i] = e.embed(text)
	}
	return vectors, nil
}

func (e *HashEmbedder) embed(text string) []float64 {
	vec := make([]float64, e.Dimension)

	for _, token := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(token))
		vec[h.Sum32()%uint32(e.Dimension)]++
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
