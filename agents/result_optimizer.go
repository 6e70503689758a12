package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
	"github.com/deepnoodle-ai/brief/rag"
)

// ResultOptimizer tunes the strategy against retrieved benchmark
// evidence. The retriever may be nil or return nothing; the agent then
// works from model knowledge alone.
type ResultOptimizer struct {
	client    llm.Client
	retriever rag.Retriever
}

func NewResultOptimizer(client llm.Client, retriever rag.Retriever) *ResultOptimizer {
	return &ResultOptimizer{client: client, retriever: retriever}
}

func (a *ResultOptimizer) Name() string {
	return "result_optimizer"
}

type resultOptimizerOutput struct {
	Recommendations        []string `json:"recommendations"`
	TrendingHashtags       []string `json:"trending_hashtags"`
	SeasonalContext        string   `json:"seasonal_context"`
	ExpectedCTR            float64  `json:"expected_ctr"`
	ExpectedEngagementRate float64  `json:"expected_engagement_rate"`
	EstimatedReach         int      `json:"estimated_reach"`
	ConfidenceScore        float64  `json:"confidence_score"`
}

func (a *ResultOptimizer) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.Classification == nil || state.PromptAnalysis == nil {
		return nil, fmt.Errorf("classification and analysis are required")
	}

	insights := a.retrieveInsights(ctx, state)
	performanceData := "No historical data available."
	if len(insights) > 0 {
		var lines []string
		for _, insight := range insights {
			lines = append(lines, fmt.Sprintf("- %s (%s)", insight.Insight, insight.Source))
		}
		performanceData = strings.Join(lines, "\n")
	}

	strategy := map[string]any{
		"post_type":      state.Classification.PostType,
		"platform":       state.PromptAnalysis.Platform,
		"objective":      state.PromptAnalysis.Objective,
		"visual_format":  state.VisualFormatRecommendation,
		"caption":        state.EngagementElements,
		"visual_concept": state.VisualConcept,
	}
	prompt := fmt.Sprintf(
		pick(state.Language, resultOptimizerES, resultOptimizerEN),
		performanceData,
		toJSON(strategy),
	)

	var output resultOptimizerOutput
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &output); err != nil {
		return nil, err
	}
	if len(output.Recommendations) == 0 {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "optimizer returned no recommendations",
		}
	}

	optimization := &brief.ResultOptimization{
		ProjectedMetrics: brief.ProjectedMetrics{
			ExpectedCTR:            output.ExpectedCTR,
			ExpectedEngagementRate: output.ExpectedEngagementRate,
			EstimatedReach:         output.EstimatedReach,
		},
		Recommendations:  output.Recommendations,
		TrendingHashtags: output.TrendingHashtags,
		SeasonalContext:  output.SeasonalContext,
		ConfidenceScore:  output.ConfidenceScore,
		DataSource:       "model",
	}
	if len(insights) > 0 {
		optimization.HistoricalPerformance = brief.HistoricalPerformance{
			Source:   insights[0].Source,
			Context:  insights[0].Insight,
			Audience: "General",
		}
		optimization.DataSource = "benchmarks"
	}

	state.ResultOptimization = optimization
	return state, nil
}

func (a *ResultOptimizer) retrieveInsights(ctx context.Context, state *brief.State) []rag.Insight {
	if a.retriever == nil {
		return nil
	}
	query := fmt.Sprintf("%s %s %s",
		state.PromptAnalysis.Platform,
		state.Classification.PostType,
		state.PromptAnalysis.Objective)
	// Retrieval is best effort: an error or an empty result both mean
	// the optimizer proceeds without evidence.
	insights, err := a.retriever.Query(ctx, query, 3)
	if err != nil {
		return nil
	}
	return insights
}
