package brief

import (
	"fmt"
	"strings"
	"time"
)

// AssembleBrief builds the final ContentBrief from a finished state.
// Every required slot must be present; optional slots are carried over
// when their agents succeeded. The assembled document is a read-only
// projection: it copies values out of the state rather than aliasing
// its bookkeeping.
func AssembleBrief(state *State, model string) (*ContentBrief, error) {
	var missing []string
	if state.Classification == nil {
		missing = append(missing, "post_type")
	}
	if state.CoreContent == "" {
		missing = append(missing, "core_content")
	}
	if state.PromptAnalysis == nil {
		missing = append(missing, "prompt_analysis")
	}
	if state.BrandVoice == nil {
		missing = append(missing, "brand_voice")
	}
	if state.EngagementElements == nil {
		missing = append(missing, "engagement_elements")
	}
	if state.VisualConcept == nil {
		missing = append(missing, "visual_concept")
	}
	if state.FactualGrounding == nil {
		missing = append(missing, "factual_grounding")
	}
	if state.Reasoning == nil {
		missing = append(missing, "reasoning")
	}
	if len(missing) > 0 {
		return nil, NewAssemblyError(fmt.Sprintf(
			"missing required components: %s", strings.Join(missing, ", ")))
	}

	timings := make(map[string]float64, len(state.AgentTimings))
	for name, d := range state.AgentTimings {
		timings[name] = d.Seconds()
	}

	end := state.EndTime
	if end.IsZero() {
		end = time.Now()
	}

	return &ContentBrief{
		PostType:           state.Classification.PostType,
		CoreContent:        state.CoreContent,
		PromptAnalysis:     *state.PromptAnalysis,
		BrandVoice:         *state.BrandVoice,
		EngagementElements: *state.EngagementElements,
		VisualConcept:      *state.VisualConcept,
		FactualGrounding:   *state.FactualGrounding,
		Reasoning:          *state.Reasoning,

		VisualFormatRecommendation: state.VisualFormatRecommendation,
		VideoScript:                state.VideoScript,
		ResultOptimization:         state.ResultOptimization,
		ContextualAwareness:        state.ContextualAwareness,

		Metadata: ProcessingMetadata{
			ProcessingTime: end.Sub(state.StartTime).Seconds(),
			AgentTimings:   timings,
			CompletedSteps: append([]string(nil), state.CompletedSteps...),
			ModelUsed:      model,
			Timestamp:      end.UTC().Format(time.RFC3339),
			Version:        BriefVersion,
		},
	}, nil
}
