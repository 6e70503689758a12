package brief

import (
	"context"
	"time"
)

// RunCallbacks receives execution events from the pipeline runner.
type RunCallbacks interface {
	BeforeRun(ctx context.Context, event *RunEvent)
	AfterRun(ctx context.Context, event *RunEvent)

	BeforeStage(ctx context.Context, event *StageEvent)
	AfterStage(ctx context.Context, event *StageEvent)
}

// RunEvent provides context for run-level events.
type RunEvent struct {
	RunID      string
	Status     RunStatus
	Prompt     string
	Language   string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	StageCount int
	Brief      *ContentBrief
	Error      error
}

// StageEvent provides context for stage-level events.
type StageEvent struct {
	RunID     string
	StageName string
	Mode      StageMode
	Attempts  int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Degraded  bool
	Error     error
}

// BaseRunCallbacks is a no-op implementation. Embed it to override only
// the events you care about.
type BaseRunCallbacks struct{}

func (b *BaseRunCallbacks) BeforeRun(ctx context.Context, event *RunEvent) {
	// noop
}

func (b *BaseRunCallbacks) AfterRun(ctx context.Context, event *RunEvent) {
	// noop
}

func (b *BaseRunCallbacks) BeforeStage(ctx context.Context, event *StageEvent) {
	// noop
}

func (b *BaseRunCallbacks) AfterStage(ctx context.Context, event *StageEvent) {
	// noop
}

// CallbackChain fans events out to multiple callback implementations.
type CallbackChain struct {
	callbacks []RunCallbacks
}

func NewCallbackChain(callbacks ...RunCallbacks) *CallbackChain {
	return &CallbackChain{callbacks: callbacks}
}

// Add appends a callback to the chain.
func (c *CallbackChain) Add(callback RunCallbacks) {
	c.callbacks = append(c.callbacks, callback)
}

func (c *CallbackChain) BeforeRun(ctx context.Context, event *RunEvent) {
	for _, callback := range c.callbacks {
		callback.BeforeRun(ctx, event)
	}
}

func (c *CallbackChain) AfterRun(ctx context.Context, event *RunEvent) {
	for _, callback := range c.callbacks {
		callback.AfterRun(ctx, event)
	}
}

func (c *CallbackChain) BeforeStage(ctx context.Context, event *StageEvent) {
	for _, callback := range c.callbacks {
		callback.BeforeStage(ctx, event)
	}
}

func (c *CallbackChain) AfterStage(ctx context.Context, event *StageEvent) {
	for _, callback := range c.callbacks {
		callback.AfterStage(ctx, event)
	}
}
