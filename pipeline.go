package brief

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/deepnoodle-ai/brief/language"
	"github.com/deepnoodle-ai/brief/retry"
	"go.jetify.com/typeid"
)

// Input prompt length bounds, in characters. Shorter prompts carry too
// little signal to analyze; longer ones blow the template budget.
const (
	MinPromptLength = 10
	MaxPromptLength = 4000
)

// Retry and timeout defaults for stage execution.
const (
	DefaultMaxRetries   = 3
	DefaultBaseWait     = time.Second
	DefaultStageTimeout = 30 * time.Second
)

// NewRunID returns a new identifier for a pipeline run.
func NewRunID() string {
	id, err := typeid.WithPrefix("run")
	if err != nil {
		panic(err)
	}
	return id.String()
}

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	// Stages run strictly in order. Required.
	Stages []Stage

	// Model is recorded in the brief metadata.
	Model string

	Logger    *slog.Logger
	RunLogger RunLogger
	Callbacks RunCallbacks

	// MaxRetries per stage after the first attempt. Defaults to 3.
	// Set to a negative value for no retries.
	MaxRetries int

	// BaseWait before the first retry, doubled each attempt.
	BaseWait time.Duration

	// StageTimeout bounds each attempt of a stage.
	StageTimeout time.Duration

	// DetectLanguage maps (prompt, forced) to a language code. Defaults
	// to the whatlanggo-based detector.
	DetectLanguage func(prompt, forced string) string
}

// Pipeline executes a fixed agent sequence against a fresh State per
// run. A Pipeline is immutable after construction and safe for
// concurrent runs; each run owns its State.
type Pipeline struct {
	stages         []Stage
	model          string
	logger         *slog.Logger
	runLogger      RunLogger
	callbacks      RunCallbacks
	maxRetries     int
	baseWait       time.Duration
	stageTimeout   time.Duration
	detectLanguage func(prompt, forced string) string
}

// NewPipeline validates the stage list and applies defaults.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if len(opts.Stages) == 0 {
		return nil, fmt.Errorf("stages are required")
	}
	seen := map[string]bool{}
	for _, stage := range opts.Stages {
		if stage.Agent == nil {
			return nil, fmt.Errorf("stage agent is required")
		}
		name := stage.Agent.Name()
		if name == "" {
			return nil, fmt.Errorf("stage agent name is required")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate stage %q", name)
		}
		seen[name] = true
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.RunLogger == nil {
		opts.RunLogger = NewNullRunLogger()
	}
	if opts.Callbacks == nil {
		opts.Callbacks = &BaseRunCallbacks{}
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = DefaultMaxRetries
	} else if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.BaseWait == 0 {
		opts.BaseWait = DefaultBaseWait
	}
	if opts.StageTimeout == 0 {
		opts.StageTimeout = DefaultStageTimeout
	}
	if opts.DetectLanguage == nil {
		opts.DetectLanguage = language.Detect
	}
	return &Pipeline{
		stages:         opts.Stages,
		model:          opts.Model,
		logger:         opts.Logger,
		runLogger:      opts.RunLogger,
		callbacks:      opts.Callbacks,
		maxRetries:     opts.MaxRetries,
		baseWait:       opts.BaseWait,
		stageTimeout:   opts.StageTimeout,
		detectLanguage: opts.DetectLanguage,
	}, nil
}

// Request describes one generation run.
type Request struct {
	// Prompt is the user's content request. Required.
	Prompt string

	// Language forces "en" or "es"; empty means detect from the prompt.
	Language string

	// RunID overrides the generated identifier.
	RunID string
}

// Result is the outcome of a run. State is always populated once
// validation passes; Brief only on a completed run.
type Result struct {
	RunID    string
	Status   RunStatus
	State    *State
	Brief    *ContentBrief
	Warnings []string
	Errors   []string
	Duration time.Duration
}

// Run executes the pipeline. A degraded run (optional stages failed)
// still returns a nil error along with the warnings. The returned error
// is non-nil only for validation failures, fatal stage failures and
// assembly failures; in the latter two cases the Result still carries
// the partial state.
func (p *Pipeline) Run(ctx context.Context, request Request) (*Result, error) {
	if err := validatePrompt(request.Prompt); err != nil {
		return nil, err
	}

	runID := request.RunID
	if runID == "" {
		runID = NewRunID()
	}
	logger := p.logger.With("run_id", runID)

	lang := p.detectLanguage(request.Prompt, request.Language)
	state := NewState(request.Prompt, lang)
	state.StartTime = time.Now()

	runEvent := &RunEvent{
		RunID:      runID,
		Status:     RunStatusRunning,
		Prompt:     request.Prompt,
		Language:   lang,
		StartTime:  state.StartTime,
		StageCount: len(p.stages),
	}
	p.callbacks.BeforeRun(ctx, runEvent)
	logger.Info("run started", "language", lang, "stages", len(p.stages))

	var fatal *PipelineError
	for _, stage := range p.stages {
		halted, err := p.runStage(ctx, logger, runID, stage, state)
		if err != nil && halted {
			fatal = err
			break
		}
	}

	state.EndTime = time.Now()

	var brief *ContentBrief
	var runErr error
	status := RunStatusFailed
	if fatal != nil {
		runErr = fatal
		logger.Error("run failed", "error", fatal)
	} else {
		assembled, err := AssembleBrief(state, p.model)
		if err != nil {
			assemblyErr := ClassifyError(err)
			state.AddError("assembly", assemblyErr.Cause)
			state.EndTime = time.Now()
			runErr = assemblyErr
			logger.Error("brief assembly failed", "error", err)
		} else {
			brief = assembled
			state.IsComplete = true
			status = RunStatusCompleted
			logger.Info("run completed",
				"duration", state.TotalDuration(),
				"warnings", len(state.Warnings))
		}
	}

	runEvent.Status = status
	runEvent.EndTime = state.EndTime
	runEvent.Duration = state.TotalDuration()
	runEvent.Brief = brief
	runEvent.Error = runErr
	p.callbacks.AfterRun(ctx, runEvent)

	return &Result{
		RunID:    runID,
		Status:   status,
		State:    state,
		Brief:    brief,
		Warnings: state.Warnings,
		Errors:   state.Errors,
		Duration: state.TotalDuration(),
	}, runErr
}

// runStage executes one stage with retry and timeout, records its
// timing, and applies the stage's failure mode. The bool result
// reports whether a failure must halt the run.
func (p *Pipeline) runStage(ctx context.Context, logger *slog.Logger, runID string, stage Stage, state *State) (bool, *PipelineError) {
	name := stage.Agent.Name()
	start := time.Now()

	stageEvent := &StageEvent{
		RunID:     runID,
		StageName: name,
		Mode:      stage.Mode,
		StartTime: start,
	}
	p.callbacks.BeforeStage(ctx, stageEvent)

	attempts := 0
	var next *State
	err := retry.Do(ctx, func() error {
		attempts++
		stageCtx, cancel := context.WithTimeout(ctx, p.stageTimeout)
		defer cancel()
		result, processErr := stage.Agent.Process(stageCtx, state)
		if processErr != nil {
			return processErr
		}
		next = result
		return nil
	}, retry.WithMaxRetries(p.maxRetries), retry.WithBaseWait(p.baseWait))

	duration := time.Since(start)
	state.AgentTimings[name] = duration

	entry := &RunLogEntry{
		RunID:     runID,
		StageName: name,
		Mode:      stage.Mode.String(),
		Status:    "completed",
		Attempts:  attempts,
		StartTime: start,
		Duration:  duration.Seconds(),
	}

	var halted bool
	var stageErr *PipelineError
	if err != nil {
		classified := ClassifyError(err)
		classified.Step = name
		entry.Error = classified.Error()
		switch stage.Mode {
		case StageOptional:
			entry.Status = "degraded"
			state.AddWarning(name, classified.Cause)
			stageEvent.Degraded = true
			logger.Warn("optional stage degraded", "stage", name, "error", classified.Cause)
		case StageRequired:
			entry.Status = "failed"
			state.AddError(name, classified.Cause)
			stageErr = classified
			logger.Error("required stage failed", "stage", name, "error", classified.Cause)
		default:
			entry.Status = "failed"
			state.AddError(name, classified.Cause)
			halted = true
			stageErr = classified
			logger.Error("mandatory stage failed", "stage", name, "error", classified.Cause)
		}
	} else {
		*state = *next
		state.MarkCompleted(name)
		logger.Info("stage completed", "stage", name, "duration", duration, "attempts", attempts)
	}

	if logErr := p.runLogger.LogStage(ctx, entry); logErr != nil {
		logger.Warn("failed to write run log", "stage", name, "error", logErr)
	}

	stageEvent.Attempts = attempts
	stageEvent.EndTime = start.Add(duration)
	stageEvent.Duration = duration
	if stageErr != nil {
		stageEvent.Error = stageErr
	}
	p.callbacks.AfterStage(ctx, stageEvent)

	return halted, stageErr
}

func validatePrompt(prompt string) error {
	length := utf8.RuneCountInString(prompt)
	if length < MinPromptLength {
		return NewValidationError(fmt.Sprintf(
			"prompt must be at least %d characters, got %d", MinPromptLength, length))
	}
	if length > MaxPromptLength {
		return NewValidationError(fmt.Sprintf(
			"prompt must be at most %d characters, got %d", MaxPromptLength, length))
	}
	return nil
}
