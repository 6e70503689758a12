package brief

import "time"

// BriefVersion identifies the ContentBrief document schema.
const BriefVersion = "1.0.0"

// PostType classifies the intent of a social media post.
type PostType string

const (
	PostTypeLaunch       PostType = "Launch"
	PostTypeEducational  PostType = "Educational"
	PostTypePromotional  PostType = "Promotional"
	PostTypeStorytelling PostType = "Storytelling"
	PostTypeEngagement   PostType = "Engagement"
)

// ValidPostType reports whether t is one of the known classifications.
func ValidPostType(t PostType) bool {
	switch t {
	case PostTypeLaunch, PostTypeEducational, PostTypePromotional,
		PostTypeStorytelling, PostTypeEngagement:
		return true
	}
	return false
}

// VisualFormat names the delivery format recommended for a post.
type VisualFormat string

const (
	VisualFormatImage       VisualFormat = "Image"
	VisualFormatVideo       VisualFormat = "Video"
	VisualFormatCarousel    VisualFormat = "Carousel"
	VisualFormatInfographic VisualFormat = "Infographic"
)

// ValidVisualFormat reports whether f is one of the known formats.
func ValidVisualFormat(f VisualFormat) bool {
	switch f {
	case VisualFormatImage, VisualFormatVideo, VisualFormatCarousel, VisualFormatInfographic:
		return true
	}
	return false
}

// PromptAnalysis is the structured reading of the user's prompt.
type PromptAnalysis struct {
	Objective      string   `json:"objective"`
	Audience       string   `json:"audience"`
	BrandCues      []string `json:"brand_cues"`
	KeyFacts       []string `json:"key_facts"`
	Urgency        string   `json:"urgency,omitempty"`
	Platform       string   `json:"platform,omitempty"`
	ToneIndicators []string `json:"tone_indicators"`
	ContentGoals   []string `json:"content_goals"`
}

// PostClassification pairs the chosen post type with its rationale.
type PostClassification struct {
	PostType      PostType `json:"post_type"`
	Justification string   `json:"justification,omitempty"`
}

// BrandVoice captures tone and style guidelines for the copy.
type BrandVoice struct {
	Tone          string   `json:"tone"`
	Personality   string   `json:"personality"`
	Style         string   `json:"style"`
	Values        []string `json:"values"`
	LanguageLevel string   `json:"language_level"`
}

// FactualGrounding lists the facts the content must stay anchored to.
type FactualGrounding struct {
	KeyFacts           []string `json:"key_facts"`
	DataSources        []string `json:"data_sources"`
	VerificationStatus string   `json:"verification_status"`
}

// EngagementElements holds the caption and its supporting hooks.
type EngagementElements struct {
	Caption         string   `json:"caption"`
	CallToAction    string   `json:"call_to_action"`
	Hashtags        []string `json:"hashtags"`
	EngagementHooks []string `json:"engagement_hooks,omitempty"`
	Questions       []string `json:"questions"`
}

// VisualConcept describes the look of the creative.
type VisualConcept struct {
	Mood           string   `json:"mood"`
	ColorPalette   []string `json:"color_palette"`
	ImageryType    string   `json:"imagery_type"`
	LayoutStyle    string   `json:"layout_style"`
	VisualElements []string `json:"visual_elements,omitempty"`
	DesignNotes    string   `json:"design_notes,omitempty"`
}

// Reasoning records the strategic choices behind the brief.
type Reasoning struct {
	StrategicDecisions     []string `json:"strategic_decisions"`
	AudienceConsiderations string   `json:"audience_considerations"`
	PlatformOptimization   string   `json:"platform_optimization"`
	CompetitiveAnalysis    string   `json:"competitive_analysis,omitempty"`
	RiskAssessment         string   `json:"risk_assessment,omitempty"`
}

// VisualFormatRecommendation is the optional format advice.
type VisualFormatRecommendation struct {
	RecommendedFormat    VisualFormat `json:"recommended_format"`
	Justification        string       `json:"justification"`
	PlatformOptimization string       `json:"platform_optimization,omitempty"`
}

// ScriptSegment is one beat of a video script.
type ScriptSegment struct {
	Segment         string `json:"segment"`
	Duration        string `json:"duration"`
	Narration       string `json:"narration"`
	VisualDirection string `json:"visual_direction"`
	TextOverlay     string `json:"text_overlay,omitempty"`
}

// VideoScript is the optional structured video script.
type VideoScript struct {
	ScriptSegments     []ScriptSegment `json:"script_segments"`
	EngagementElements []string        `json:"engagement_elements"`
	MusicStyle         string          `json:"music_style,omitempty"`
	Hashtags           []string        `json:"hashtags,omitempty"`
	TotalDuration      string          `json:"total_duration,omitempty"`
	ProductionNotes    string          `json:"production_notes,omitempty"`
}

// HistoricalPerformance cites the evidence behind an optimization.
type HistoricalPerformance struct {
	Source   string `json:"source"`
	Context  string `json:"context"`
	Audience string `json:"audience,omitempty"`
}

// ProjectedMetrics estimates how the content should perform.
type ProjectedMetrics struct {
	ExpectedCTR            float64 `json:"expected_ctr"`
	ExpectedEngagementRate float64 `json:"expected_engagement_rate"`
	EstimatedReach         int     `json:"estimated_reach"`
}

// ResultOptimization is the optional performance-tuning advice.
type ResultOptimization struct {
	HistoricalPerformance HistoricalPerformance `json:"historical_performance"`
	ProjectedMetrics      ProjectedMetrics      `json:"projected_metrics"`
	Recommendations       []string              `json:"recommendations"`
	TrendingHashtags      []string              `json:"trending_hashtags,omitempty"`
	SeasonalContext       string                `json:"seasonal_context,omitempty"`
	ConfidenceScore       float64               `json:"confidence_score"`
	DataSource            string                `json:"data_source,omitempty"`
}

// ContextualAwareness is the optional real-time context layer.
type ContextualAwareness struct {
	RelevantTrends     []string `json:"relevant_trends"`
	TrendingHashtags   []string `json:"trending_hashtags,omitempty"`
	OptimalPostingTime string   `json:"optimal_posting_time,omitempty"`
	Adaptations        []string `json:"adaptations,omitempty"`
	IndustryContext    string   `json:"industry_context,omitempty"`
}

// ProcessingMetadata describes how a brief was produced. Timing values
// are written only by the pipeline runner.
type ProcessingMetadata struct {
	ProcessingTime float64            `json:"processing_time"`
	AgentTimings   map[string]float64 `json:"agent_timings,omitempty"`
	CompletedSteps []string           `json:"completed_steps,omitempty"`
	ModelUsed      string             `json:"model_used"`
	Timestamp      string             `json:"timestamp"`
	Version        string             `json:"version"`
}

// ContentBrief is the final document assembled from a completed run.
// The first eight fields are always present; the optional sections are
// omitted when their agents were skipped or degraded.
type ContentBrief struct {
	PostType           PostType           `json:"post_type"`
	CoreContent        string             `json:"core_content"`
	PromptAnalysis     PromptAnalysis     `json:"prompt_analysis"`
	BrandVoice         BrandVoice         `json:"brand_voice"`
	EngagementElements EngagementElements `json:"engagement_elements"`
	VisualConcept      VisualConcept      `json:"visual_concept"`
	FactualGrounding   FactualGrounding   `json:"factual_grounding"`
	Reasoning          Reasoning          `json:"reasoning"`

	VisualFormatRecommendation *VisualFormatRecommendation `json:"visual_format_recommendation,omitempty"`
	VideoScript                *VideoScript                `json:"video_script,omitempty"`
	ResultOptimization         *ResultOptimization         `json:"result_optimizations,omitempty"`
	ContextualAwareness        *ContextualAwareness        `json:"contextual_awareness,omitempty"`

	Metadata ProcessingMetadata `json:"metadata"`
}

// TotalDuration converts the recorded processing time back to a
// time.Duration for display.
func (b *ContentBrief) TotalDuration() time.Duration {
	return time.Duration(b.Metadata.ProcessingTime * float64(time.Second))
}
