package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// CaptionCreator produces the caption, call to action, hashtags and
// interaction hooks around the generated copy.
type CaptionCreator struct {
	client llm.Client
}

func NewCaptionCreator(client llm.Client) *CaptionCreator {
	return &CaptionCreator{client: client}
}

func (a *CaptionCreator) Name() string {
	return "caption_creator"
}

func (a *CaptionCreator) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.CoreContent == "" || state.Classification == nil ||
		state.BrandVoice == nil || state.PromptAnalysis == nil {
		return nil, fmt.Errorf("core content, classification, brand voice and analysis are required")
	}
	prompt := fmt.Sprintf(
		pick(state.Language, captionCreatorES, captionCreatorEN),
		state.CoreContent,
		state.Classification.PostType,
		toJSON(state.BrandVoice),
		state.PromptAnalysis.Objective,
	)

	var elements brief.EngagementElements
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &elements); err != nil {
		return nil, err
	}
	if elements.Caption == "" {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "engagement elements missing caption",
		}
	}

	state.EngagementElements = &elements
	return state, nil
}
