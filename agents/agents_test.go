package agents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
	"github.com/deepnoodle-ai/brief/rag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient matches prompts against template fragments and
// returns canned completions.
type scriptedClient struct {
	responses map[string]string
	calls     map[string]int
}

func newScriptedClient() *scriptedClient {
	return &scriptedClient{
		responses: map[string]string{},
		calls:     map[string]int{},
	}
}

func (c *scriptedClient) Name() string { return "scripted" }

func (c *scriptedClient) Generate(ctx context.Context, prompt string, opts *llm.Options) (*llm.Response, error) {
	for fragment, response := range c.responses {
		if strings.Contains(prompt, fragment) {
			c.calls[fragment]++
			return &llm.Response{Content: response, Model: "scripted", Provider: "scripted"}, nil
		}
	}
	return nil, errors.New("no scripted response for prompt")
}

type staticRetriever struct {
	insights []rag.Insight
}

func (r *staticRetriever) Query(ctx context.Context, text string, topK int) ([]rag.Insight, error) {
	return r.insights, nil
}

func baseState() *brief.State {
	state := brief.NewState("Launch our new productivity app for remote teams on Instagram", "en")
	state.PromptAnalysis = &brief.PromptAnalysis{
		Objective:      "launch awareness",
		Audience:       "remote teams",
		BrandCues:      []string{"innovative"},
		KeyFacts:       []string{"new productivity app"},
		Platform:       "instagram",
		ToneIndicators: []string{"energetic"},
		ContentGoals:   []string{"drive signups"},
	}
	state.Classification = &brief.PostClassification{
		PostType:      brief.PostTypeLaunch,
		Justification: "new product announcement",
	}
	state.BrandVoice = &brief.BrandVoice{
		Tone:          "energetic",
		Personality:   "bold and friendly",
		Style:         "direct",
		Values:        []string{"innovation"},
		LanguageLevel: "casual",
	}
	state.FactualGrounding = &brief.FactualGrounding{
		KeyFacts:           []string{"new productivity app"},
		DataSources:        []string{"company announcement"},
		VerificationStatus: "verified",
	}
	state.CoreContent = "Meet the future of remote work."
	return state
}

func TestPromptAnalyzer(t *testing.T) {
	client := newScriptedClient()
	client.responses["Analyze this marketing prompt"] = `{
		"objective": "launch awareness",
		"audience": "remote teams",
		"brand_cues": ["innovative"],
		"key_facts": ["new productivity app"],
		"urgency": "high",
		"platform": "instagram",
		"tone_indicators": ["energetic"],
		"content_goals": ["drive signups"]
	}`

	agent := NewPromptAnalyzer(client)
	state := brief.NewState("Launch our new productivity app for remote teams on Instagram", "en")
	result, err := agent.Process(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, result.PromptAnalysis)
	assert.Equal(t, "launch awareness", result.PromptAnalysis.Objective)
	assert.Equal(t, "instagram", result.PromptAnalysis.Platform)
}

func TestPromptAnalyzerRejectsIncompleteAnalysis(t *testing.T) {
	client := newScriptedClient()
	client.responses["Analyze this marketing prompt"] = `{"objective": "", "audience": ""}`

	agent := NewPromptAnalyzer(client)
	state := brief.NewState("Launch our new productivity app for remote teams", "en")
	_, err := agent.Process(context.Background(), state)
	require.Error(t, err)
	var parsingErr *llm.ParsingError
	require.ErrorAs(t, err, &parsingErr)
	assert.Equal(t, llm.ParsingReasonWrongShape, parsingErr.Reason)
}

func TestPostClassifierRejectsUnknownType(t *testing.T) {
	client := newScriptedClient()
	client.responses["classify the most effective post type"] = `{"post_type": "Viral", "justification": "x"}`

	agent := NewPostClassifier(client)
	_, err := agent.Process(context.Background(), baseState())
	require.Error(t, err)
	var parsingErr *llm.ParsingError
	require.ErrorAs(t, err, &parsingErr)
}

func TestPostClassifierRequiresAnalysis(t *testing.T) {
	agent := NewPostClassifier(newScriptedClient())
	state := brief.NewState("some valid prompt here", "en")
	_, err := agent.Process(context.Background(), state)
	require.Error(t, err)
}

func TestTextGeneratorTrimsPlainText(t *testing.T) {
	client := newScriptedClient()
	client.responses["Generate the main content"] = "\n  Meet the future of remote work.  \n"

	agent := NewTextGenerator(client)
	state := baseState()
	state.CoreContent = ""
	result, err := agent.Process(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, "Meet the future of remote work.", result.CoreContent)
}

func TestVisualFormatRecommenderDefaultsToVideo(t *testing.T) {
	client := newScriptedClient()
	client.responses["most effective visual format"] = `{"recommended_format": "Hologram", "justification": ""}`

	agent := NewVisualFormatRecommender(client)
	result, err := agent.Process(context.Background(), baseState())
	require.NoError(t, err)
	require.NotNil(t, result.VisualFormatRecommendation)
	assert.Equal(t, brief.VisualFormatVideo, result.VisualFormatRecommendation.RecommendedFormat)
	assert.NotEmpty(t, result.VisualFormatRecommendation.Justification)
}

func TestVideoScripterSkipsLLMForNonVideoFormats(t *testing.T) {
	client := newScriptedClient()
	agent := NewVideoScripter(client)

	state := baseState()
	state.VisualFormatRecommendation = &brief.VisualFormatRecommendation{
		RecommendedFormat: brief.VisualFormatCarousel,
	}
	result, err := agent.Process(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, result.VideoScript)
	assert.Equal(t, "hook", result.VideoScript.ScriptSegments[0].Segment)
	assert.Empty(t, client.calls)
}

func TestVideoScripterGeneratesFullScript(t *testing.T) {
	client := newScriptedClient()
	client.responses["structured script for short-form video"] = `{
		"script_segments": [
			{"segment": "hook", "duration": "0-3s", "narration": "Stop scrolling", "visual_direction": "fast cut", "text_overlay": "New!"},
			{"segment": "cta", "duration": "25-30s", "narration": "Sign up", "visual_direction": "logo", "text_overlay": "Link in bio"}
		],
		"engagement_elements": ["opening question"],
		"music_style": "upbeat",
		"hashtags": ["#app"]
	}`

	agent := NewVideoScripter(client)
	state := baseState()
	state.VisualFormatRecommendation = &brief.VisualFormatRecommendation{
		RecommendedFormat: brief.VisualFormatVideo,
	}
	result, err := agent.Process(context.Background(), state)
	require.NoError(t, err)
	require.NotNil(t, result.VideoScript)
	assert.Len(t, result.VideoScript.ScriptSegments, 2)
	assert.Equal(t, "30s", result.VideoScript.TotalDuration)
	assert.Contains(t, result.VideoScript.Hashtags, "#Reels") // instagram platform hashtags appended
}

func TestResultOptimizerUsesRetrievedEvidence(t *testing.T) {
	client := newScriptedClient()
	client.responses["digital marketing strategist"] = `{
		"recommendations": ["post at 7pm"],
		"trending_hashtags": ["#productivity"],
		"seasonal_context": "back to school",
		"expected_ctr": 0.045,
		"expected_engagement_rate": 0.05,
		"estimated_reach": 2100,
		"confidence_score": 0.8
	}`
	retriever := &staticRetriever{insights: []rag.Insight{
		{Source: "Hootsuite Digital Trends Report 2024", Insight: "Video outperforms static images", Relevance: 0.9},
	}}

	agent := NewResultOptimizer(client, retriever)
	result, err := agent.Process(context.Background(), baseState())
	require.NoError(t, err)
	require.NotNil(t, result.ResultOptimization)
	assert.Equal(t, "benchmarks", result.ResultOptimization.DataSource)
	assert.Equal(t, "Hootsuite Digital Trends Report 2024", result.ResultOptimization.HistoricalPerformance.Source)
	assert.InDelta(t, 0.045, result.ResultOptimization.ProjectedMetrics.ExpectedCTR, 1e-9)
}

func TestResultOptimizerWorksWithoutRetriever(t *testing.T) {
	client := newScriptedClient()
	client.responses["digital marketing strategist"] = `{
		"recommendations": ["post at 7pm"],
		"confidence_score": 0.6
	}`

	agent := NewResultOptimizer(client, nil)
	result, err := agent.Process(context.Background(), baseState())
	require.NoError(t, err)
	assert.Equal(t, "model", result.ResultOptimization.DataSource)
}

func TestContextualAwareness(t *testing.T) {
	client := newScriptedClient()
	client.responses["real-time marketing intelligence"] = `{
		"relevant_trends": ["authenticity"],
		"trending_hashtags": ["#Trending"],
		"optimal_posting_time": "6-9 PM daily",
		"adaptations": ["behind the scenes"],
		"industry_context": "technology"
	}`

	agent := NewContextualAwareness(client, nil)
	result, err := agent.Process(context.Background(), baseState())
	require.NoError(t, err)
	require.NotNil(t, result.ContextualAwareness)
	assert.Equal(t, []string{"authenticity"}, result.ContextualAwareness.RelevantTrends)
}

func TestDefaultStagesOrderAndModes(t *testing.T) {
	stages := DefaultStages(newScriptedClient(), nil)
	require.Len(t, stages, 12)

	names := make([]string, len(stages))
	for i, stage := range stages {
		names[i] = stage.Agent.Name()
	}
	assert.Equal(t, []string{
		"prompt_analyzer",
		"post_classifier",
		"brand_voice",
		"fact_grounding",
		"text_generator",
		"caption_creator",
		"visual_concept",
		"reasoning_module",
		"visual_format_recommender",
		"video_scripter",
		"result_optimizer",
		"contextual_awareness",
	}, names)

	for i, stage := range stages {
		switch {
		case i < 7:
			assert.Equal(t, brief.StageMandatory, stage.Mode, names[i])
		case i == 7:
			assert.Equal(t, brief.StageRequired, stage.Mode, names[i])
		default:
			assert.Equal(t, brief.StageOptional, stage.Mode, names[i])
		}
	}
}
