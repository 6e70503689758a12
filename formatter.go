package brief

import (
	"context"

	"github.com/fatih/color"
)

// ConsoleFormatter prints run progress with colorized output. It plugs
// into the pipeline as a RunCallbacks implementation.
type ConsoleFormatter struct {
	BaseRunCallbacks
}

func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

func (f *ConsoleFormatter) BeforeRun(ctx context.Context, event *RunEvent) {
	color.Cyan("Run %s started (%d stages, language %s)",
		event.RunID, event.StageCount, event.Language)
}

func (f *ConsoleFormatter) AfterRun(ctx context.Context, event *RunEvent) {
	switch {
	case event.Error != nil:
		color.Red("Run %s failed after %s: %v", event.RunID, event.Duration, event.Error)
	default:
		color.Green("Run %s completed in %s", event.RunID, event.Duration)
	}
}

func (f *ConsoleFormatter) BeforeStage(ctx context.Context, event *StageEvent) {
	color.Blue("  > %s", event.StageName)
}

func (f *ConsoleFormatter) AfterStage(ctx context.Context, event *StageEvent) {
	switch {
	case event.Error != nil:
		color.Red("  ✗ %s failed after %d attempts: %v",
			event.StageName, event.Attempts, event.Error)
	case event.Degraded:
		color.Yellow("  ! %s skipped (degraded)", event.StageName)
	default:
		color.Green("  ✓ %s (%s)", event.StageName, event.Duration)
	}
}
