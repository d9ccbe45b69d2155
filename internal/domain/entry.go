package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/neuro-os/neuro-index/internal/scoring"
)

// DateFormat is the wire and storage format for entry dates.
const DateFormat = "2006-01-02"

// DailyEntry is one day's raw metrics plus the itemized score breakdown.
// Entries are keyed by calendar date: saving the same date again replaces
// the previous row (last write wins).
type DailyEntry struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_entries_date" json:"date"`

	// Raw metrics
	StudyHours        float64 `gorm:"not null" json:"study_hours"`
	ScreenTimeMinutes int     `gorm:"not null" json:"screen_time_minutes"`
	RecallPercent     float64 `gorm:"not null" json:"recall_percent"`
	SleepHours        float64 `gorm:"not null" json:"sleep_hours"`
	Bedtime           string  `gorm:"type:varchar(5);not null" json:"bedtime"`
	WakeTime          string  `gorm:"type:varchar(5);not null" json:"wake_time"`
	DietQuality       int     `gorm:"not null" json:"diet_quality"`
	ExerciseMinutes   int     `gorm:"not null" json:"exercise_minutes"`
	SunlightMinutes   int     `gorm:"default:0" json:"sunlight_minutes"`
	ReactionTimeMS    *int    `json:"reaction_time_ms,omitempty"`
	CycleDay          int     `gorm:"not null" json:"cycle_day"`

	// Calculated scores
	Profile            string  `gorm:"type:varchar(16);not null" json:"profile"`
	StudyScore         float64 `gorm:"not null" json:"study_score"`
	RecallScore        float64 `gorm:"not null" json:"recall_score"`
	SleepScore         float64 `gorm:"not null" json:"sleep_score"`
	DietScore          float64 `gorm:"not null" json:"diet_score"`
	ExerciseScore      float64 `gorm:"not null" json:"exercise_score"`
	SunlightScore      float64 `gorm:"default:0" json:"sunlight_score"`
	PVTScore           float64 `gorm:"default:0" json:"pvt_score"`
	CircadianPenalty   float64 `gorm:"default:0" json:"circadian_penalty"`
	DistractionPenalty float64 `gorm:"default:0" json:"distraction_penalty"`
	TotalIndex         float64 `gorm:"not null" json:"total_index"`
	CognitiveROI       float64 `gorm:"not null" json:"cognitive_roi"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyEntry) TableName() string {
	return "daily_entries"
}

// CreateEntryRequest is the request body for recording a day's metrics.
// @Description Raw daily metrics. Bounds reflect physical plausibility;
// @Description out-of-range values are rejected, never clamped.
type CreateEntryRequest struct {
	// Entry date in YYYY-MM-DD format
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2025-03-15"`
	// Hours spent studying
	StudyHours float64 `json:"study_hours" validate:"min=0,max=24" example:"6.5" minimum:"0" maximum:"24"`
	// Leisure screen time in minutes
	ScreenTimeMinutes int `json:"screen_time_minutes" validate:"min=0,max=1440" example:"60" minimum:"0" maximum:"1440"`
	// Recall accuracy percentage
	RecallPercent float64 `json:"recall_percent" validate:"min=0,max=100" example:"80" minimum:"0" maximum:"100"`
	// Hours of sleep
	SleepHours float64 `json:"sleep_hours" validate:"min=0,max=24" example:"7.5" minimum:"0" maximum:"24"`
	// Bedtime in HH:MM (24-hour)
	Bedtime string `json:"bedtime" validate:"required,clock" example:"22:30"`
	// Wake time in HH:MM (24-hour)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"06:00"`
	// Diet quality rating from 0 (poor) to 10 (excellent)
	DietQuality int `json:"diet_quality" validate:"min=0,max=10" example:"7" minimum:"0" maximum:"10"`
	// Exercise minutes
	ExerciseMinutes int `json:"exercise_minutes" validate:"min=0,max=300" example:"45" minimum:"0" maximum:"300"`
	// Outdoor sunlight exposure in minutes
	SunlightMinutes int `json:"sunlight_minutes" validate:"min=0,max=720" example:"30" minimum:"0" maximum:"720"`
	// Mean PVT reaction time in milliseconds (required by the neuro profile)
	ReactionTimeMS *int `json:"reaction_time_ms,omitempty" validate:"omitempty,min=100,max=3000" example:"250" minimum:"100" maximum:"3000"`
}

// EntryResponse is the response body for entry endpoints.
// @Description One scored day: raw metrics, itemized breakdown, and derived metrics.
type EntryResponse struct {
	ID                uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date              string    `json:"date" example:"2025-03-15"`
	StudyHours        float64   `json:"study_hours" example:"6.5"`
	ScreenTimeMinutes int       `json:"screen_time_minutes" example:"60"`
	RecallPercent     float64   `json:"recall_percent" example:"80"`
	SleepHours        float64   `json:"sleep_hours" example:"7.5"`
	Bedtime           string    `json:"bedtime" example:"22:30"`
	WakeTime          string    `json:"wake_time" example:"06:00"`
	DietQuality       int       `json:"diet_quality" example:"7"`
	ExerciseMinutes   int       `json:"exercise_minutes" example:"45"`
	SunlightMinutes   int       `json:"sunlight_minutes" example:"30"`
	ReactionTimeMS    *int      `json:"reaction_time_ms,omitempty" example:"250"`
	CycleDay          int       `json:"cycle_day" example:"14"`
	CyclePhase        string    `json:"cycle_phase" example:"Ovulation Phase"`

	Profile            string  `json:"profile" example:"productivity"`
	StudyScore         float64 `json:"study_score" example:"24.38"`
	RecallScore        float64 `json:"recall_score" example:"16"`
	SleepScore         float64 `json:"sleep_score" example:"20"`
	DietScore          float64 `json:"diet_score" example:"14"`
	ExerciseScore      float64 `json:"exercise_score" example:"10"`
	SunlightScore      float64 `json:"sunlight_score" example:"5"`
	PVTScore           float64 `json:"pvt_score" example:"0"`
	CircadianPenalty   float64 `json:"circadian_penalty" example:"0"`
	DistractionPenalty float64 `json:"distraction_penalty" example:"0"`
	TotalIndex         float64 `json:"total_index" example:"89.38"`
	CognitiveROI       float64 `json:"cognitive_roi" example:"12.31"`

	Category            string    `json:"category" example:"Excellent"`
	CategoryDescription string    `json:"category_description" example:"High cognitive efficiency"`
	CreatedAt           time.Time `json:"created_at" example:"2025-03-15T20:05:00Z"`
	UpdatedAt           time.Time `json:"updated_at" example:"2025-03-15T20:05:00Z"`
}

func (e *DailyEntry) ToResponse() EntryResponse {
	label, description := scoring.PerformanceCategory(int(math.Round(e.TotalIndex)))

	return EntryResponse{
		ID:                  e.ID,
		Date:                e.Date.Format(DateFormat),
		StudyHours:          e.StudyHours,
		ScreenTimeMinutes:   e.ScreenTimeMinutes,
		RecallPercent:       e.RecallPercent,
		SleepHours:          e.SleepHours,
		Bedtime:             e.Bedtime,
		WakeTime:            e.WakeTime,
		DietQuality:         e.DietQuality,
		ExerciseMinutes:     e.ExerciseMinutes,
		SunlightMinutes:     e.SunlightMinutes,
		ReactionTimeMS:      e.ReactionTimeMS,
		CycleDay:            e.CycleDay,
		CyclePhase:          scoring.CyclePhase(e.CycleDay),
		Profile:             e.Profile,
		StudyScore:          e.StudyScore,
		RecallScore:         e.RecallScore,
		SleepScore:          e.SleepScore,
		DietScore:           e.DietScore,
		ExerciseScore:       e.ExerciseScore,
		SunlightScore:       e.SunlightScore,
		PVTScore:            e.PVTScore,
		CircadianPenalty:    e.CircadianPenalty,
		DistractionPenalty:  e.DistractionPenalty,
		TotalIndex:          e.TotalIndex,
		CognitiveROI:        e.CognitiveROI,
		Category:            label,
		CategoryDescription: description,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

// EntryListResponse is the response body for listing entries.
// @Description Paginated list of daily entries, newest first.
type EntryListResponse struct {
	// Array of daily entries
	Data []EntryResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJkYXRlIjoiMjAyNS0wMy0wMSJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// EntryFilter contains filter parameters for listing entries
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
