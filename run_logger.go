package brief

import (
	"context"
	"time"
)

// RunLogEntry records one stage outcome within a run.
type RunLogEntry struct {
	RunID     string    `json:"run_id"`
	StageName string    `json:"stage_name"`
	Mode      string    `json:"mode"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts,omitempty"`
	Error     string    `json:"error,omitempty"`
	StartTime time.Time `json:"start_time"`
	Duration  float64   `json:"duration"`
}

// RunLogger defines the stage-level audit logging interface.
type RunLogger interface {
	// LogStage logs a finished stage.
	LogStage(ctx context.Context, entry *RunLogEntry) error

	// GetRunHistory retrieves the stage log for a run.
	GetRunHistory(ctx context.Context, runID string) ([]*RunLogEntry, error)
}
