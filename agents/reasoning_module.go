package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// ReasoningModule explains the strategic choices behind the brief. Its
// output is required by assembly, so a failure here surfaces when the
// final brief is built.
type ReasoningModule struct {
	client llm.Client
}

func NewReasoningModule(client llm.Client) *ReasoningModule {
	return &ReasoningModule{client: client}
}

func (a *ReasoningModule) Name() string {
	return "reasoning_module"
}

func (a *ReasoningModule) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.PromptAnalysis == nil || state.Classification == nil {
		return nil, fmt.Errorf("prompt analysis and classification are required")
	}
	summary := map[string]any{
		"prompt_analysis": state.PromptAnalysis,
		"post_type":       state.Classification.PostType,
		"brand_voice":     state.BrandVoice,
		"core_content":    state.CoreContent,
		"engagement":      state.EngagementElements,
		"visual_concept":  state.VisualConcept,
	}
	prompt := fmt.Sprintf(
		pick(state.Language, reasoningModuleES, reasoningModuleEN),
		toJSON(summary),
	)

	var reasoning brief.Reasoning
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &reasoning); err != nil {
		return nil, err
	}
	if len(reasoning.StrategicDecisions) == 0 {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "reasoning missing strategic decisions",
		}
	}

	state.Reasoning = &reasoning
	return state, nil
}
