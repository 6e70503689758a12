// Package rag retrieves marketing performance insights that ground the
// later pipeline agents. The store is intentionally small: a local
// SQLite database seeded with published benchmark figures, ranked
// either by embedding similarity or by keyword overlap.
package rag

import "context"

// Insight is one retrieved piece of marketing evidence.
type Insight struct {
	Source    string  `json:"source"`
	Insight   string  `json:"insight"`
	Relevance float64 `json:"relevance"`
}

// Retriever answers free-text queries with ranked insights. An empty
// result is a valid answer, not an error.
type Retriever interface {
	Query(ctx context.Context, text string, topK int) ([]Insight, error)
}

// Embedder turns text into a vector for similarity ranking.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
