package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// TextGenerator writes the main post copy. Unlike the other agents it
// asks for plain text, not JSON.
type TextGenerator struct {
	client llm.Client
}

func NewTextGenerator(client llm.Client) *TextGenerator {
	return &TextGenerator{client: client}
}

func (a *TextGenerator) Name() string {
	return "text_generator"
}

func (a *TextGenerator) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.PromptAnalysis == nil || state.Classification == nil ||
		state.BrandVoice == nil || state.FactualGrounding == nil {
		return nil, fmt.Errorf("analysis, classification, brand voice and grounding are required")
	}
	prompt := fmt.Sprintf(
		pick(state.Language, textGeneratorES, textGeneratorEN),
		toJSON(state.PromptAnalysis),
		state.Classification.PostType,
		toJSON(state.BrandVoice),
		toJSON(state.FactualGrounding),
	)

	response, err := a.client.Generate(ctx, prompt, textOptions())
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(response.Content)
	if content == "" {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonRefusal,
			Message: "empty post content",
		}
	}

	state.CoreContent = content
	return state, nil
}
