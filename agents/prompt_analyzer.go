package agents

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// PromptAnalyzer reads the raw user prompt into a structured analysis.
// It is the first stage and every later agent depends on its output.
type PromptAnalyzer struct {
	client llm.Client
}

func NewPromptAnalyzer(client llm.Client) *PromptAnalyzer {
	return &PromptAnalyzer{client: client}
}

func (a *PromptAnalyzer) Name() string {
	return "prompt_analyzer"
}

func (a *PromptAnalyzer) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	prompt := fmt.Sprintf(
		pick(state.Language, promptAnalyzerES, promptAnalyzerEN),
		state.InputPrompt,
	)

	var analysis brief.PromptAnalysis
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &analysis); err != nil {
		return nil, err
	}
	if analysis.Objective == "" || analysis.Audience == "" {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "analysis missing objective or audience",
		}
	}

	state.PromptAnalysis = &analysis
	return state, nil
}
