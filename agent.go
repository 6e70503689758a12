package brief

import "context"

// Agent is one stage of the pipeline. Process receives the accumulated
// state, performs its work and returns the state with its own slot
// filled in. Agents never touch timing or step bookkeeping; that
// belongs to the runner.
type Agent interface {
	// Name is the stable step identifier, e.g. "prompt_analyzer".
	Name() string

	Process(ctx context.Context, state *State) (*State, error)
}

// StageMode controls what happens when a stage exhausts its retries.
type StageMode int

const (
	// StageMandatory failures are fatal: the run halts and no brief is
	// produced.
	StageMandatory StageMode = iota

	// StageRequired failures let the run continue, but assembly will
	// fail because the slot is needed for the final brief.
	StageRequired

	// StageOptional failures degrade to a warning and an empty slot.
	StageOptional
)

func (m StageMode) String() string {
	switch m {
	case StageMandatory:
		return "mandatory"
	case StageRequired:
		return "required"
	case StageOptional:
		return "optional"
	}
	return "unknown"
}

// Stage binds an agent to its failure mode within the pipeline.
type Stage struct {
	Agent Agent
	Mode  StageMode
}

// RunStatus tracks the lifecycle of a single pipeline run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)
