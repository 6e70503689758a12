package brief

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRunLoggerRoundTrip(t *testing.T) {
	logger := NewFileRunLogger(t.TempDir())
	ctx := context.Background()
	runID := NewRunID()

	first := &RunLogEntry{
		RunID:     runID,
		StageName: "prompt_analyzer",
		Mode:      "mandatory",
		Status:    "completed",
		Attempts:  1,
		StartTime: time.Now().UTC().Truncate(time.Second),
		Duration:  1.25,
	}
	second := &RunLogEntry{
		RunID:     runID,
		StageName: "result_optimizer",
		Mode:      "optional",
		Status:    "degraded",
		Attempts:  4,
		Error:     "[result_optimizer]: provider unavailable",
		StartTime: time.Now().UTC().Truncate(time.Second),
		Duration:  7.0,
	}
	require.NoError(t, logger.LogStage(ctx, first))
	require.NoError(t, logger.LogStage(ctx, second))

	entries, err := logger.GetRunHistory(ctx, runID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestFileRunLoggerSeparatesRuns(t *testing.T) {
	logger := NewFileRunLogger(t.TempDir())
	ctx := context.Background()

	a, b := NewRunID(), NewRunID()
	require.NoError(t, logger.LogStage(ctx, &RunLogEntry{RunID: a, StageName: "prompt_analyzer", Status: "completed"}))
	require.NoError(t, logger.LogStage(ctx, &RunLogEntry{RunID: b, StageName: "prompt_analyzer", Status: "failed"}))

	entries, err := logger.GetRunHistory(ctx, a)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "completed", entries[0].Status)
}

func TestFileRunLoggerMissingRun(t *testing.T) {
	logger := NewFileRunLogger(t.TempDir())
	_, err := logger.GetRunHistory(context.Background(), "run_missing")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestNullRunLogger(t *testing.T) {
	logger := NewNullRunLogger()
	require.NoError(t, logger.LogStage(context.Background(), &RunLogEntry{RunID: "x"}))
	entries, err := logger.GetRunHistory(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
