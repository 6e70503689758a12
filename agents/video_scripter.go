package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/brief"
	"github.com/deepnoodle-ai/brief/llm"
)

// VideoScripter writes a segmented short-form video script when the
// recommended format supports video. For non-video formats it emits a
// minimal placeholder script without spending an LLM call.
type VideoScripter struct {
	client llm.Client
}

func NewVideoScripter(client llm.Client) *VideoScripter {
	return &VideoScripter{client: client}
}

func (a *VideoScripter) Name() string {
	return "video_scripter"
}

func (a *VideoScripter) Process(ctx context.Context, state *brief.State) (*brief.State, error) {
	if state.CoreContent == "" {
		return nil, fmt.Errorf("core content is required")
	}

	format := brief.VisualFormatImage
	if state.VisualFormatRecommendation != nil {
		format = state.VisualFormatRecommendation.RecommendedFormat
	}
	if format != brief.VisualFormatVideo {
		state.VideoScript = basicScript(state.Language)
		return state, nil
	}

	platform := "general"
	if state.PromptAnalysis != nil && state.PromptAnalysis.Platform != "" {
		platform = state.PromptAnalysis.Platform
	}
	prompt := fmt.Sprintf(
		pick(state.Language, videoScripterES, videoScripterEN),
		state.CoreContent,
		format,
		platform,
		"30s",
	)

	var script brief.VideoScript
	if _, err := llm.GenerateStructured(ctx, a.client, prompt, jsonOptions(), &script); err != nil {
		return nil, err
	}
	if len(script.ScriptSegments) == 0 {
		return nil, &llm.ParsingError{
			Reason:  llm.ParsingReasonWrongShape,
			Message: "video script has no segments",
		}
	}
	if len(script.EngagementElements) == 0 {
		script.EngagementElements = []string{"Opening question", "Clear call to action"}
	}
	script.Hashtags = append(script.Hashtags, platformHashtags(platform)...)
	script.TotalDuration = totalDuration(script.ScriptSegments)

	state.VideoScript = &script
	return state, nil
}

func basicScript(lang string) *brief.VideoScript {
	narration := "Attention! Discover something amazing..."
	overlay := "Did you know...?"
	direction := "Product close-up"
	if lang == "es" {
		narration = "¡Atención! Descubre algo increíble..."
		overlay = "¿Sabías que...?"
		direction = "Close-up del producto"
	}
	return &brief.VideoScript{
		ScriptSegments: []brief.ScriptSegment{
			{
				Segment:         "hook",
				Duration:        "0-3s",
				Narration:       narration,
				VisualDirection: direction,
				TextOverlay:     overlay,
			},
		},
		EngagementElements: []string{"Opening question", "Clear call to action"},
		TotalDuration:      "30s",
	}
}

func platformHashtags(platform string) []string {
	switch strings.ToLower(platform) {
	case "tiktok":
		return []string{"#FYP", "#Viral"}
	case "instagram":
		return []string{"#Reels", "#Trending"}
	case "youtube":
		return []string{"#Shorts", "#YouTube"}
	case "linkedin":
		return []string{"#Professional", "#Business"}
	}
	return nil
}

// totalDuration reads the end of the last segment's duration range,
// e.g. "25-30s" yields "30s".
func totalDuration(segments []brief.ScriptSegment) string {
	if len(segments) == 0 {
		return "30s"
	}
	duration := segments[len(segments)-1].Duration
	if duration == "" {
		return "30s"
	}
	for i := len(duration) - 1; i >= 0; i-- {
		if duration[i] == '-' {
			return duration[i+1:]
		}
	}
	return duration
}
