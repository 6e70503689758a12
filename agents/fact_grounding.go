package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// FactGrounding validates and structures the factual claims the
// content must stay anchored to.
type FactGrounding struct {
	client llm.Client
}

func NewFactGrounding(client llm.Client) *FactGrounding {
	return &FactGrounding{client: client}
}

func (a *FactGrounding) Name() string {
	return "fact_grounding"
}

func (a *FactGrounding) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.PromptAnalysis == nil {
		return nil, fmt.Errorf("prompt analysis is required")
	}
	prompt := fmt.Sprintf(
		pick(state.Language, factGroundingES, factGroundingEN),
		state.InputPrompt,
		toJSON(state.PromptAnalysis.KeyFacts),
	)

	var grounding brief.FactualGrounding
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &grounding); err != nil {
		return nil, err
	}
	if grounding.VerificationStatus == "" {
		grounding.VerificationStatus = "unverified"
	}

	state.FactualGrounding = &grounding
	return state, nil
}
