package brief

import (
	"fmt"
	"time"
)

// State is the shared document a pipeline run accumulates. Each agent
// owns exactly one slot and writes it once; the runner owns timing,
// step bookkeeping and the error/warning lists. A State is used by a
// single run and needs no locking.
type State struct {
	InputPrompt string `json:"input_prompt"`
	Language    string `json:"language"`

	PromptAnalysis             *PromptAnalysis             `json:"prompt_analysis,omitempty"`
	Classification             *PostClassification         `json:"classification,omitempty"`
	BrandVoice                 *BrandVoice                 `json:"brand_voice,omitempty"`
	FactualGrounding           *FactualGrounding           `json:"factual_grounding,omitempty"`
	CoreContent                string                      `json:"core_content,omitempty"`
	EngagementElements         *EngagementElements         `json:"engagement_elements,omitempty"`
	VisualConcept              *VisualConcept              `json:"visual_concept,omitempty"`
	Reasoning                  *Reasoning                  `json:"reasoning,omitempty"`
	VisualFormatRecommendation *VisualFormatRecommendation `json:"visual_format_recommendation,omitempty"`
	VideoScript                *VideoScript                `json:"video_script,omitempty"`
	ResultOptimization         *ResultOptimization         `json:"result_optimizations,omitempty"`
	ContextualAwareness        *ContextualAwareness        `json:"contextual_awareness,omitempty"`

	CompletedSteps []string                 `json:"completed_steps"`
	Errors         []string                 `json:"errors"`
	Warnings       []string                 `json:"warnings"`
	StartTime      time.Time                `json:"processing_start"`
	EndTime        time.Time                `json:"processing_end"`
	AgentTimings   map[string]time.Duration `json:"agent_timings"`
	IsComplete     bool                     `json:"is_complete"`
	IsError        bool                     `json:"is_error"`
}

// NewState returns an empty state for one run.
func NewState(prompt, language string) *State {
	return &State{
		InputPrompt:  prompt,
		Language:     language,
		AgentTimings: map[string]time.Duration{},
	}
}

// AddError records a step failure as "[step]: message" and marks the
// state as having a critical error.
func (s *State) AddError(step, message string) {
	s.Errors = append(s.Errors, fmt.Sprintf("[%s]: %s", step, message))
	s.IsError = true
}

// AddWarning records a degraded step as "[step]: message" without
// affecting the error flag.
func (s *State) AddWarning(step, message string) {
	s.Warnings = append(s.Warnings, fmt.Sprintf("[%s]: %s", step, message))
}

// MarkCompleted appends a step to the completion list, preserving run
// order and skipping duplicates.
func (s *State) MarkCompleted(step string) {
	for _, name := range s.CompletedSteps {
		if name == step {
			return
		}
	}
	s.CompletedSteps = append(s.CompletedSteps, step)
}

// Completed reports whether the named step finished.
func (s *State) Completed(step string) bool {
	for _, name := range s.CompletedSteps {
		if name == step {
			return true
		}
	}
	return false
}

// Clone returns a copy with its own bookkeeping slices and timing map.
// Slot documents are shared: they are written once and treated as
// immutable afterwards.
func (s *State) Clone() *State {
	clone := *s
	clone.CompletedSteps = append([]string(nil), s.CompletedSteps...)
	clone.Errors = append([]string(nil), s.Errors...)
	clone.Warnings = append([]string(nil), s.Warnings...)
	clone.AgentTimings = make(map[string]time.Duration, len(s.AgentTimings))
	for name, d := range s.AgentTimings {
		clone.AgentTimings[name] = d
	}
	return &clone
}

// TotalDuration is the wall-clock time of the run, zero until the
// runner sets the end time.
func (s *State) TotalDuration() time.Duration {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
