package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
	"github.com/deepnoodle-ai/brief/rag"
)

// ContextualAwareness layers current trends and timing advice onto the
// finished strategy. Runs last; like the optimizer it treats retrieval
// as best effort.
type ContextualAwareness struct {
	client    llm.Client
	retriever rag.Retriever
}

func NewContextualAwareness(client llm.Client, retriever rag.Retriever) *ContextualAwareness {
	return &ContextualAwareness{client: client, retriever: retriever}
}

func (a *ContextualAwareness) Name() string {
	return "contextual_awareness"
}

func (a *ContextualAwareness) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.Classification == nil || state.PromptAnalysis == nil {
		return nil, fmt.Errorf("classification and analysis are required")
	}

	externalData := "No external data available."
	if a.retriever != nil {
		query := fmt.Sprintf("%s %s trends",
			state.PromptAnalysis.Platform, state.Classification.PostType)
		if insights, err := a.retriever.Query(ctx, query, 3); err == nil && len(insights) > 0 {
			var lines []string
			for _, insight := range insights {
				lines = append(lines, fmt.Sprintf("- %s (%s)", insight.Insight, insight.Source))
			}
			externalData = strings.Join(lines, "\n")
		}
	}

	strategy := map[string]any{
		"post_type":    state.Classification.PostType,
		"platform":     state.PromptAnalysis.Platform,
		"audience":     state.PromptAnalysis.Audience,
		"core_content": state.CoreContent,
		"brand_voice":  state.BrandVoice,
	}
	prompt := fmt.Sprintf(
		pick(state.Language, contextualAwarenessES, contextualAwarenessEN),
		toJSON(strategy),
		externalData,
	)

	var awareness brief.ContextualAwareness
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &awareness); err != nil {
		return nil, err
	}
	if len(awareness.RelevantTrends) == 0 {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "contextual awareness returned no trends",
		}
	}

	state.ContextualAwareness = &awareness
	return state, nil
}
