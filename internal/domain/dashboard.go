package domain

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a metric.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"78.4"`
	Std float64 `json:"std" example:"9.1"`
	Min float64 `json:"min" example:"55.2"`
	Max float64 `json:"max" example:"95"`
}

// ComponentAverages holds the mean of each component score over a window.
// @Description Average component scores for a time window.
type ComponentAverages struct {
	StudyScore         float64 `json:"study_score" example:"22.1"`
	RecallScore        float64 `json:"recall_score" example:"15.3"`
	SleepScore         float64 `json:"sleep_score" example:"17.8"`
	DietScore          float64 `json:"diet_score" example:"13.0"`
	ExerciseScore      float64 `json:"exercise_score" example:"7.4"`
	SunlightScore      float64 `json:"sunlight_score" example:"3.5"`
	PVTScore           float64 `json:"pvt_score" example:"0"`
	CircadianPenalty   float64 `json:"circadian_penalty" example:"-1.2"`
	DistractionPenalty float64 `json:"distraction_penalty" example:"-2.4"`
}

// WindowSummary contains display-only aggregates over a window of entries.
// All values are recomputed from stored entries on every read; nothing here
// feeds back into scoring.
// @Description Aggregated metrics for a window of daily entries.
type WindowSummary struct {
	// Window start date (YYYY-MM-DD)
	From string `json:"from" example:"2025-02-14"`
	// Window end date (YYYY-MM-DD)
	To string `json:"to" example:"2025-03-15"`
	// Number of entries in the window
	EntryCount int `json:"entry_count" example:"27"`
	// Total index statistics
	TotalIndex DescriptiveStats `json:"total_index"`
	// Study hours statistics
	StudyHours DescriptiveStats `json:"study_hours"`
	// Sleep hours statistics
	SleepHours DescriptiveStats `json:"sleep_hours"`
	// Cognitive ROI statistics
	CognitiveROI DescriptiveStats `json:"cognitive_roi"`
	// Average component scores
	Components ComponentAverages `json:"components"`
}

// LatestSnapshot is the most recent entry's headline numbers.
// @Description Headline numbers for the most recent entry.
type LatestSnapshot struct {
	Date                string  `json:"date" example:"2025-03-15"`
	TotalIndex          float64 `json:"total_index" example:"89"`
	Category            string  `json:"category" example:"Excellent"`
	CategoryDescription string  `json:"category_description" example:"High cognitive efficiency"`
	CognitiveROI        float64 `json:"cognitive_roi" example:"12.31"`
}

// SummaryResponse is the response for the dashboard summary endpoint.
// @Description Dashboard summary: window aggregates plus the latest entry.
type SummaryResponse struct {
	// Window length in days
	WindowDays int `json:"window_days" example:"30"`
	// Aggregates over the window
	Summary WindowSummary `json:"summary"`
	// Most recent entry, absent when no entries exist
	Latest *LatestSnapshot `json:"latest,omitempty"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated productivity insights.
type LLMInsightsOutput struct {
	// Summary of recent performance (2-3 sentences)
	Summary string `json:"summary" example:"Your index has been trending upward this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Study output is highest on days following 7+ hours of sleep\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Keep bedtime before 22:30 to avoid the circadian penalty\"]"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	History WindowSummary   `json:"history"`
	Recent  WindowSummary   `json:"recent"`
	Latest  *LatestSnapshot `json:"latest,omitempty"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Productivity insights over recent windows.
type InsightsResponse struct {
	// Metrics for the windows the insights were generated from
	Metrics struct {
		History WindowSummary `json:"history"`
		Recent  WindowSummary `json:"recent"`
	} `json:"metrics"`
	// LLM-generated insights
	Insights LLMInsightsOutput `json:"insights"`
}
