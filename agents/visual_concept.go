package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// VisualConceptAgent writes the design direction for the creative.
type VisualConceptAgent struct {
	client llm.Client
}

func NewVisualConceptAgent(client llm.Client) *VisualConceptAgent {
	return &VisualConceptAgent{client: client}
}

func (a *VisualConceptAgent) Name() string {
	return "visual_concept"
}

func (a *VisualConceptAgent) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.CoreContent == "" || state.Classification == nil ||
		state.BrandVoice == nil || state.PromptAnalysis == nil {
		return nil, fmt.Errorf("core content, classification, brand voice and analysis are required")
	}
	prompt := fmt.Sprintf(
		pick(state.Language, visualConceptES, visualConceptEN),
		state.CoreContent,
		state.Classification.PostType,
		toJSON(state.BrandVoice),
		state.PromptAnalysis.Objective,
	)

	var concept brief.VisualConcept
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &concept); err != nil {
		return nil, err
	}
	if concept.Mood == "" {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "visual concept missing mood",
		}
	}
	if concept.LayoutStyle == "" {
		concept.LayoutStyle = "modern"
	}

	state.VisualConcept = &concept
	return state, nil
}
