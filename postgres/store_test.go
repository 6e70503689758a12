package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/deepnoodle-ai/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the database named by BRIEF_TEST_POSTGRES_DSN
// and skips the test when it is unset.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("BRIEF_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("BRIEF_TEST_POSTGRES_DSN not set")
	}
	store, err := NewStore(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndGetRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := &RunRecord{
		RunID:    brief.NewRunID(),
		Status:   brief.RunStatusCompleted,
		Prompt:   "launch the new app on instagram",
		Language: "en",
		Brief: &brief.ContentBrief{
			PostType:    brief.PostTypeLaunch,
			CoreContent: "Meet the future of remote work.",
			Metadata:    brief.ProcessingMetadata{Version: brief.BriefVersion},
		},
		Warnings: []string{"[result_optimizer]: provider unavailable"},
		Duration: 8 * time.Second,
	}
	require.NoError(t, store.SaveRun(ctx, record))

	got, err := store.GetRun(ctx, record.RunID)
	require.NoError(t, err)
	assert.Equal(t, record.RunID, got.RunID)
	assert.Equal(t, brief.RunStatusCompleted, got.Status)
	require.NotNil(t, got.Brief)
	assert.Equal(t, brief.PostTypeLaunch, got.Brief.PostType)
	assert.Equal(t, record.Warnings, got.Warnings)
	assert.Equal(t, 8*time.Second, got.Duration)
}

func TestStoreSaveFailedRunWithoutBrief(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := &RunRecord{
		RunID:    brief.NewRunID(),
		Status:   brief.RunStatusFailed,
		Prompt:   "launch the new app on instagram",
		Language: "en",
		Errors:   []string{"[fact_grounding]: rate limit"},
	}
	require.NoError(t, store.SaveRun(ctx, record))

	got, err := store.GetRun(ctx, record.RunID)
	require.NoError(t, err)
	assert.Nil(t, got.Brief)
	assert.Equal(t, record.Errors, got.Errors)
}

func TestStoreGetMissingRun(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetRun(context.Background(), "run_does_not_exist")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreListRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &RunRecord{
		RunID: brief.NewRunID(), Status: brief.RunStatusCompleted,
		Prompt: "p1", Language: "en",
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	}
	second := &RunRecord{
		RunID: brief.NewRunID(), Status: brief.RunStatusFailed,
		Prompt: "p2", Language: "es",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.SaveRun(ctx, first))
	require.NoError(t, store.SaveRun(ctx, second))

	records, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.RunID, records[0].RunID)
}
