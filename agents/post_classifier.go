package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// PostClassifier decides which of the five post types fits the
// analyzed prompt.
type PostClassifier struct {
	client llm.Client
}

func NewPostClassifier(client llm.Client) *PostClassifier {
	return &PostClassifier{client: client}
}

func (a *PostClassifier) Name() string {
	return "post_classifier"
}

func (a *PostClassifier) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.PromptAnalysis == nil {
		return nil, fmt.Errorf("prompt analysis is required")
	}
	prompt := fmt.Sprintf(
		pick(state.Language, postClassifierES, postClassifierEN),
		toJSON(state.PromptAnalysis),
	)

	var classification brief.PostClassification
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &classification); err != nil {
		return nil, err
	}
	if !brief.ValidPostType(classification.PostType) {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: fmt.Sprintf("unknown post type %q", classification.PostType),
		}
	}

	state.Classification = &classification
	return state, nil
}
