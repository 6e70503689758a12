package rag

import "fmt"

// Benchmark is one published performance figure for a platform/format
// combination.
type Benchmark struct {
	Platform       string  `json:"platform"`
	Format         string  `json:"format"`
	Metric         string  `json:"metric"`
	Value          float64 `json:"value"`
	EngagementRate float64 `json:"engagement_rate"`
	Industry       string  `json:"industry"`
	Source         string  `json:"source"`
	Date           string  `json:"date"`
	Context        string  `json:"context"`
	Audience       string  `json:"audience"`
}

// Document renders the benchmark as the text that gets embedded and
// keyword-matched.
func (b Benchmark) Document() string {
	return fmt.Sprintf(
		"Platform: %s\nFormat: %s\nMetric: %s = %.2f%%\nEngagement Rate: %.1f%%\nIndustry: %s\nAudience: %s\nContext: %s\nSource: %s\nDate: %s",
		b.Platform, b.Format, b.Metric, b.Value, b.EngagementRate,
		b.Industry, b.Audience, b.Context, b.Source, b.Date,
	)
}

// DefaultBenchmarks returns the seed dataset, figures taken from public
// 2024 industry reports.
func DefaultBenchmarks() []Benchmark {
	return []Benchmark{
		{
			Platform: "Instagram", Format: "Reels", Metric: "CTR",
			Value: 1.84, EngagementRate: 4.2, Industry: "E-commerce",
			Source: "Hootsuite Digital Trends Report 2024", Date: "2024-Q3",
			Context: "Video content outperforms static images by 112%", Audience: "Gen Z",
		},
		{
			Platform: "Instagram", Format: "Carousel", Metric: "CTR",
			Value: 1.23, EngagementRate: 2.8, Industry: "E-commerce",
			Source: "Sprout Social Index 2024", Date: "2024-Q3",
			Context: "Multiple images increase dwell time by 73%", Audience: "Millennials",
		},
		{
			Platform: "Instagram", Format: "Static Image", Metric: "CTR",
			Value: 0.89, EngagementRate: 1.9, Industry: "E-commerce",
			Source: "Social Media Examiner 2024", Date: "2024-Q3",
			Context: "High-quality visuals with clear CTAs perform best", Audience: "General",
		},
		{
			Platform: "TikTok", Format: "Short Video", Metric: "Engagement Rate",
			Value: 5.3, EngagementRate: 5.3, Industry: "Fashion",
			Source: "Social Media Examiner 2024", Date: "2024-Q3",
			Context: "Short-form video dominates discovery algorithms", Audience: "Gen Z",
		},
		{
			Platform: "LinkedIn", Format: "Document Post", Metric: "CTR",
			Value: 0.89, EngagementRate: 2.1, Industry: "B2B SaaS",
			Source: "HubSpot State of Marketing 2024", Date: "2024-Q3",
			Context: "Native documents get 5x more engagement than links", Audience: "Professionals",
		},
		{
			Platform: "Facebook", Format: "Video", Metric: "CTR",
			Value: 1.04, EngagementRate: 2.3, Industry: "General",
			Source: "Buffer State of Social 2024", Date: "2024-Q3",
			Context: "Video posts receive 59% more engagement than other post types", Audience: "Millennials",
		},
		{
			Platform: "Twitter", Format: "Thread", Metric: "Engagement Rate",
			Value: 3.7, EngagementRate: 3.7, Industry: "Tech",
			Source: "Twitter Business 2024", Date: "2024-Q3",
			Context: "Threads encourage deeper engagement and discussion", Audience: "Tech-savvy",
		},
		{
			Platform: "YouTube", Format: "Shorts", Metric: "CTR",
			Value: 2.1, EngagementRate: 6.8, Industry: "Entertainment",
			Source: "YouTube Creator Economy Report 2024", Date: "2024-Q3",
			Context: "Shorts drive 25% more subscriber growth than long-form", Audience: "Gen Z",
		},
	}
}
