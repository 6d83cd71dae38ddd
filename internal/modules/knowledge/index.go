// Package knowledge implements the retrieval side of the assistant: a flat
// in-memory vector index over a small set of reference sentences.
package knowledge

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"
)

// DefaultK is the number of results returned when the caller does not ask.
const DefaultK = 2

// Document is an indexed text.
type Document struct {
	ID        string
	Text      string
	Embedding []float64
}

// Result is a search hit.
type Result struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Distance float64 `json:"distance"`
}

// Index is an exact L2 nearest-neighbour index. It is safe for concurrent use.
type Index struct {
	mu       sync.RWMutex
	embedder Embedder
	docs     []Document
	log      zerolog.Logger
}

// NewIndex creates an empty index that embeds documents and queries with embedder.
func NewIndex(embedder Embedder, log zerolog.Logger) *Index {
	return &Index{
		embedder: embedder,
		log:      log.With().Str("component", "knowledge_index").Logger(),
	}
}

// Add embeds texts and appends them to the index.
func (i *Index) Add(ctx context.Context, texts ...string) error {
	if len(texts) == 0 {
		return nil
	}

	vectors, err := i.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed documents: %w", err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("embedder returned %d vectors for %d documents", len(vectors), len(texts))
	}

	docs := make([]Document, len(texts))
	for n, text := range texts {
		docs[n] = Document{ID: uuid.New().String(), Text: text, Embedding: vectors[n]}
	}

	i.mu.Lock()
	i.docs = append(i.docs, docs...)
	total := len(i.docs)
	i.mu.Unlock()

	i.log.Debug().Int("added", len(docs)).Int("total", total).Msg("Indexed documents")
	return nil
}

// Len returns the number of indexed documents.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.docs)
}

// Search returns the texts of up to k documents nearest to query.
func (i *Index) Search(ctx context.Context, query string, k int) ([]string, error) {
	results, err := i.SearchDocuments(ctx, query, k)
	if err != nil {
		return nil, err
	}

	texts := make([]string, len(results))
	for n, r := range results {
		texts[n] = r.Text
	}
	return texts, nil
}

// SearchDocuments returns up to k documents ordered by ascending L2 distance
// to the query embedding. Equal distances keep insertion order. An empty
// index yields an empty result without embedding the query.
func (i *Index) SearchDocuments(ctx context.Context, query string, k int) ([]Result, error) {
	if k <= 0 || i.Len() == 0 {
		return []Result{}, nil
	}

	vectors, err := i.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for one query", len(vectors))
	}
	q := vectors[0]

	i.mu.RLock()
	results := make([]Result, 0, len(i.docs))
	for _, doc := range i.docs {
		if len(doc.Embedding) != len(q) {
			i.mu.RUnlock()
			return nil, fmt.Errorf("embedding dimension mismatch: document %d, query %d", len(doc.Embedding), len(q))
		}
		results = append(results, Result{
			ID:       doc.ID,
			Text:     doc.Text,
			Distance: floats.Distance(doc.Embedding, q, 2),
		})
	}
	i.mu.RUnlock()

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Distance < results[b].Distance
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}
