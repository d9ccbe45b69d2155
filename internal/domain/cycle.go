package domain

import "time"

// UserSetting is a key/value row for single-user configuration, currently
// holding only the last period date.
type UserSetting struct {
	Key       string    `gorm:"type:varchar(64);primaryKey" json:"key"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserSetting) TableName() string {
	return "user_settings"
}

// SettingLastPeriodDate is the user_settings key for the cycle reference date.
const SettingLastPeriodDate = "last_period_date"

// UpdateCycleRequest is the request body for setting the cycle reference date.
// @Description Sets the last period date used for cycle day calculation.
type UpdateCycleRequest struct {
	// Last period date in YYYY-MM-DD format
	LastPeriodDate string `json:"last_period_date" validate:"required,datetime=2006-01-02" example:"2025-03-02"`
}

// CycleResponse is the response body for cycle endpoints.
// @Description Cycle day and phase for a date, recomputed on every read.
type CycleResponse struct {
	// Date the cycle day was computed for
	Date string `json:"date" example:"2025-03-15"`
	// Last period date, absent when never set
	LastPeriodDate *string `json:"last_period_date,omitempty" example:"2025-03-02"`
	// Cycle day in [1, 28]; defaults to 14 when no reference date is set
	CycleDay int `json:"cycle_day" example:"14"`
	// Phase label for the cycle day
	CyclePhase string `json:"cycle_phase" example:"Ovulation Phase"`
}
