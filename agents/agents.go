// Package agents implements the twelve pipeline stages that build a
// content brief. Each agent performs one LLM call against its
// per-language template and fills exactly one state slot; the two
// context-aware agents additionally consult the knowledge retriever.
package agents

import (
	"encoding/json"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
	"github.com/deepnoodle-ai/brief/rag"
)

// Generation defaults shared by all agents.
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
)

func jsonOptions() *llm.Options {
	return &llm.Options{
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		JSONMode:    true,
	}
}

func textOptions() *llm.Options {
	return &llm.Options{
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}
}

// toJSON renders a value for interpolation into a prompt template.
func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// DefaultStages returns the canonical pipeline: seven mandatory stages
// that must all succeed, the reasoning stage whose failure surfaces at
// assembly, and four optional enrichment stages that degrade to
// warnings. The retriever may be nil, in which case the optimizer and
// contextual agents run without retrieved evidence.
func DefaultStages(client llm.Client, retriever rag.Retriever) []brief.Stage {
	return []brief.Stage{
		{Agent: NewPromptAnalyzer(client), Mode: brief.StageMandatory},
		{Agent: NewPostClassifier(client), Mode: brief.StageMandatory},
		{Agent: NewBrandVoiceAgent(client), Mode: brief.StageMandatory},
		{Agent: NewFactGrounding(client), Mode: brief.StageMandatory},
		{Agent: NewTextGenerator(client), Mode: brief.StageMandatory},
		{Agent: NewCaptionCreator(client), Mode: brief.StageMandatory},
		{Agent: NewVisualConceptAgent(client), Mode: brief.StageMandatory},
		{Agent: NewReasoningModule(client), Mode: brief.StageRequired},
		{Agent: NewVisualFormatRecommender(client), Mode: brief.StageOptional},
		{Agent: NewVideoScripter(client), Mode: brief.StageOptional},
		{Agent: NewResultOptimizer(client, retriever), Mode: brief.StageOptional},
		{Agent: NewContextualAwareness(client, retriever), Mode: brief.StageOptional},
	}
}
