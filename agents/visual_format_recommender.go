package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// VisualFormatRecommender suggests the delivery format. Optional: a
// failure degrades the run instead of halting it.
type VisualFormatRecommender struct {
	client llm.Client
}

func NewVisualFormatRecommender(client llm.Client) *VisualFormatRecommender {
	return &VisualFormatRecommender{client: client}
}

func (a *VisualFormatRecommender) Name() string {
	return "visual_format_recommender"
}

func (a *VisualFormatRecommender) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.PromptAnalysis == nil || state.Classification == nil || state.BrandVoice == nil {
		return nil, fmt.Errorf("analysis, classification and brand voice are required")
	}
	platform := state.PromptAnalysis.Platform
	if platform == "" {
		platform = "general"
	}
	prompt := fmt.Sprintf(
		pick(state.Language, visualFormatRecommenderES, visualFormatRecommenderEN),
		toJSON(state.PromptAnalysis),
		state.Classification.PostType,
		platform,
	)

	var recommendation brief.VisualFormatRecommendation
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &recommendation); err != nil {
		return nil, err
	}
	// Video carries the strongest engagement numbers, so it is the
	// fallback for an unrecognized format.
	if !brief.ValidVisualFormat(recommendation.RecommendedFormat) {
		recommendation.RecommendedFormat = brief.VisualFormatVideo
	}
	if recommendation.Justification == "" {
		recommendation.Justification = fmt.Sprintf(
			"Format %s recommended to optimize engagement", recommendation.RecommendedFormat)
	}

	state.VisualFormatRecommendation = &recommendation
	return state, nil
}
