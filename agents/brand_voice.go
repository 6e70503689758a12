package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// BrandVoiceAgent derives tone and style guidelines from the analysis
// and the chosen post type.
type BrandVoiceAgent struct {
	client llm.Client
}

func NewBrandVoiceAgent(client llm.Client) *BrandVoiceAgent {
	return &BrandVoiceAgent{client: client}
}

func (a *BrandVoiceAgent) Name() string {
	return "brand_voice"
}

func (a *BrandVoiceAgent) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.PromptAnalysis == nil || state.Classification == nil {
		return nil, fmt.Errorf("prompt analysis and classification are required")
	}
	prompt := fmt.Sprintf(
		pick(state.Language, brandVoiceES, brandVoiceEN),
		toJSON(state.PromptAnalysis),
		state.Classification.PostType,
	)

	var voice brief.BrandVoice
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &voice); err != nil {
		return nil, err
	}
	if voice.Tone == "" {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "brand voice missing tone",
		}
	}

	state.BrandVoice = &voice
	return state, nil
}
