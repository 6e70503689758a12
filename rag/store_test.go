package rag

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(StoreOptions{
		Path: filepath.Join(t.TempDir(), "insights.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Seed(context.Background(), DefaultBenchmarks()))
	return store
}

func TestStoreKeywordQuery(t *testing.T) {
	store := newTestStore(t)

	insights, err := store.Query(context.Background(), "instagram reels engagement", 3)
	require.NoError(t, err)
	require.NotEmpty(t, insights)
	assert.LessOrEqual(t, len(insights), 3)
	assert.Equal(t, "Hootsuite Digital Trends Report 2024", insights[0].Source)
	assert.Greater(t, insights[0].Relevance, 0.0)
}

func TestStoreQueryNoMatches(t *testing.T) {
	store := newTestStore(t)

	insights, err := store.Query(context.Background(), "zzzz qqqq xxxx", 3)
	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestStoreSeedIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Seed(context.Background(), DefaultBenchmarks()))

	insights, err := store.Query(context.Background(), "instagram", 20)
	require.NoError(t, err)
	assert.Len(t, insights, 3) // one per Instagram benchmark, not doubled
}

func TestStoreRanksByOverlap(t *testing.T) {
	store := newTestStore(t)

	insights, err := store.Query(context.Background(), "linkedin document professionals", 1)
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, "HubSpot State of Marketing 2024", insights[0].Source)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
}
