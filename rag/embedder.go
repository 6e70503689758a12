package rag

import (
	"context"
	"fmt"
	"math"

	"google.golang.org/genai"
)

const DefaultEmbeddingModel = "gemini-embedding-001"

// GenAIEmbedder produces embeddings with the Gemini API.
type GenAIEmbedder struct {
	client *genai.Client
	model  string
}

// GenAIEmbedderOptions configures a GenAIEmbedder.
type GenAIEmbedderOptions struct {
	APIKey string
	Model  string
}

func NewGenAIEmbedder(ctx context.Context, opts GenAIEmbedderOptions) (*GenAIEmbedder, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("embedding api key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultEmbeddingModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: opts.APIKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAIEmbedder{client: client, model: opts.Model}, nil
}

func (e *GenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	result, err := e.client.Models.EmbedContent(ctx, e.model, contents,
		&genai.EmbedContentConfig{TaskType: "RETRIEVAL_QUERY"})
	if err != nil {
		return nil, fmt.Errorf("embed failed: %w", err)
	}
	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}
	return result.Embeddings[0].Values, nil
}

// cosineSimilarity returns 0 for mismatched or zero-length vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
