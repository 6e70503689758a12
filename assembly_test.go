package brief

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedState() *State {
	state := NewState("launch the new app on instagram", "en")
	state.StartTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state.EndTime = state.StartTime.Add(8 * time.Second)
	state.Classification = &PostClassification{PostType: PostTypeLaunch, Justification: "announcement"}
	state.CoreContent = "Meet the future of remote work."
	state.PromptAnalysis = &PromptAnalysis{Objective: "awareness", Audience: "remote teams", Platform: "instagram"}
	state.BrandVoice = &BrandVoice{Tone: "energetic"}
	state.EngagementElements = &EngagementElements{Caption: "The wait is over"}
	state.VisualConcept = &VisualConcept{Mood: "vibrant"}
	state.FactualGrounding = &FactualGrounding{KeyFacts: []string{"new app"}, VerificationStatus: "verified"}
	state.Reasoning = &Reasoning{StrategicDecisions: []string{"lead with video"}}
	state.CompletedSteps = []string{"prompt_analyzer", "post_classifier"}
	state.AgentTimings = map[string]time.Duration{
		"prompt_analyzer": 1500 * time.Millisecond,
		"post_classifier": 500 * time.Millisecond,
	}
	return state
}

func TestAssembleBrief(t *testing.T) {
	state := completedState()
	brief, err := AssembleBrief(state, "gemini-2.0-flash")
	require.NoError(t, err)

	assert.Equal(t, PostTypeLaunch, brief.PostType)
	assert.Equal(t, "Meet the future of remote work.", brief.CoreContent)
	assert.Equal(t, "instagram", brief.PromptAnalysis.Platform)
	assert.Nil(t, brief.VideoScript)
	assert.Nil(t, brief.ResultOptimization)

	meta := brief.Metadata
	assert.Equal(t, "gemini-2.0-flash", meta.ModelUsed)
	assert.Equal(t, BriefVersion, meta.Version)
	assert.InDelta(t, 8.0, meta.ProcessingTime, 1e-9)
	assert.InDelta(t, 1.5, meta.AgentTimings["prompt_analyzer"], 1e-9)
	assert.Equal(t, "2025-06-01T12:00:08Z", meta.Timestamp)
	assert.Equal(t, []string{"prompt_analyzer", "post_classifier"}, meta.CompletedSteps)
}

func TestAssembleBriefCarriesOptionalSlots(t *testing.T) {
	state := completedState()
	state.VideoScript = &VideoScript{TotalDuration: "30s"}
	state.ContextualAwareness = &ContextualAwareness{RelevantTrends: []string{"authenticity"}}

	brief, err := AssembleBrief(state, "gemini-2.0-flash")
	require.NoError(t, err)
	assert.Same(t, state.VideoScript, brief.VideoScript)
	assert.Same(t, state.ContextualAwareness, brief.ContextualAwareness)
}

func TestAssembleBriefReportsAllMissingSlots(t *testing.T) {
	state := completedState()
	state.Reasoning = nil
	state.VisualConcept = nil

	_, err := AssembleBrief(state, "gemini-2.0-flash")
	require.Error(t, err)
	var pipelineErr *PipelineError
	require.ErrorAs(t, err, &pipelineErr)
	assert.Equal(t, ErrorTypeAssembly, pipelineErr.Type)
	assert.Contains(t, pipelineErr.Cause, "visual_concept")
	assert.Contains(t, pipelineErr.Cause, "reasoning")
	assert.True(t, strings.HasPrefix(pipelineErr.Cause, "missing required components: "))
}

func TestAssembleBriefDoesNotAliasBookkeeping(t *testing.T) {
	state := completedState()
	brief, err := AssembleBrief(state, "m")
	require.NoError(t, err)

	state.CompletedSteps[0] = "mutated"
	assert.Equal(t, "prompt_analyzer", brief.Metadata.CompletedSteps[0])
}
