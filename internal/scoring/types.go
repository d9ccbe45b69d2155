// Package scoring implements the daily scoring engine: pure functions that
// map one day of raw wellness metrics to bounded component scores, penalties,
// and a clamped 0-100 total index. The engine holds no state beyond constant
// tables and never touches storage or the clock; callers pass every input
// explicitly, so identical inputs always produce identical output.
package scoring

import "fmt"

// Profile selects which scoring formula set is applied. The two profiles
// share the same output shape but weight the day differently.
type Profile string

const (
	// ProfileProductivity weights study output first: study 30, recall 20,
	// sleep 20 (center-peaked at 7.5h), diet 20, exercise 10, plus a 5-point
	// sunlight bonus.
	ProfileProductivity Profile = "productivity"
	// ProfileNeuro weights sleep and reaction time: sleep 20, PVT 20,
	// diet 20, recall 30, exercise 10. Requires a reaction time measurement.
	ProfileNeuro Profile = "neuro"
)

// Scorer computes a day's score breakdown for one profile.
type Scorer interface {
	Profile() Profile
	ScoreDay(in Input) (*Breakdown, error)
}

// NewScorer returns the Scorer for the given profile. The profile must be
// selected explicitly; there is no implicit default.
func NewScorer(p Profile) (Scorer, error) {
	switch p {
	case ProfileProductivity:
		return &productivityScorer{}, nil
	case ProfileNeuro:
		return &neuroScorer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, p)
	}
}

// Input is one day of raw metrics. All fields are naive local values for the
// same calendar day; the engine performs no timezone or date arithmetic on
// them. ReactionTimeMS is optional and only consumed by the neuro profile.
type Input struct {
	StudyHours        float64
	SleepHours        float64
	Bedtime           TimeOfDay
	WakeTime          TimeOfDay
	DietQuality       int
	ExerciseMinutes   int
	RecallPercent     float64
	ScreenTimeMinutes int
	SunlightMinutes   int
	ReactionTimeMS    *int
}

// Breakdown is the itemized result of scoring one day. Component scores are
// each bounded to their own maximum before summation; penalties are signed
// negative values. TotalIndex is the clamped sum, rounded per profile
// (2 decimals for productivity, nearest integer for neuro). Components a
// profile does not use stay zero.
type Breakdown struct {
	StudyScore         float64 `json:"study_score"`
	RecallScore        float64 `json:"recall_score"`
	SleepScore         float64 `json:"sleep_score"`
	DietScore          float64 `json:"diet_score"`
	ExerciseScore      float64 `json:"exercise_score"`
	SunlightScore      float64 `json:"sunlight_score"`
	PVTScore           float64 `json:"pvt_score"`
	CircadianPenalty   float64 `json:"circadian_penalty"`
	DistractionPenalty float64 `json:"distraction_penalty"`
	TotalIndex         float64 `json:"total_index"`
}

// Raw metric domains. Values outside these bounds indicate bad input capture
// upstream and fail with OutOfDomain; they are never silently clamped.
// Formula-level clamping of derived scores is separate, normal control flow.
const (
	MaxStudyHours        = 24
	MaxSleepHours        = 16
	MaxDietQuality       = 10
	MaxExerciseMinutes   = 300
	MaxRecallPercent     = 100
	MaxScreenTimeMinutes = 1440
	MaxSunlightMinutes   = 720
	MinReactionTimeMS    = 100
	MaxReactionTimeMS    = 3000
)

// validateInput checks every raw metric shared by both profiles against its
// physical domain.
func validateInput(in Input) error {
	checks := []struct {
		metric   string
		value    float64
		min, max float64
	}{
		{"study_hours", in.StudyHours, 0, MaxStudyHours},
		{"sleep_hours", in.SleepHours, 0, MaxSleepHours},
		{"diet_quality", float64(in.DietQuality), 0, MaxDietQuality},
		{"exercise_minutes", float64(in.ExerciseMinutes), 0, MaxExerciseMinutes},
		{"recall_percent", in.RecallPercent, 0, MaxRecallPercent},
		{"screen_time_minutes", float64(in.ScreenTimeMinutes), 0, MaxScreenTimeMinutes},
		{"sunlight_minutes", float64(in.SunlightMinutes), 0, MaxSunlightMinutes},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return &OutOfDomainError{Metric: c.metric, Value: c.value, Min: c.min, Max: c.max}
		}
	}
	if in.ReactionTimeMS != nil {
		ms := float64(*in.ReactionTimeMS)
		if ms < MinReactionTimeMS || ms > MaxReactionTimeMS {
			return &OutOfDomainError{Metric: "reaction_time_ms", Value: ms, Min: MinReactionTimeMS, Max: MaxReactionTimeMS}
		}
	}
	return nil
}
