package scoring

import "math"

// Neuro profile constants.
const (
	maxSleepScoreB = 20.0

	maxPVTScore  = 20.0
	optimalPVTMS = 200
	penaltyPVTMS = 500

	maxRecallScoreB = 30.0

	exerciseTargetMinutesB = 45.0

	circadianSidePenaltyCap = 5.0
)

// Optimal circadian windows for the neuro profile, both inclusive.
var (
	optimalBedtimeStart = Clock(22, 0)
	optimalBedtimeEnd   = Clock(23, 30)
	optimalWakeStart    = Clock(5, 30)
	optimalWakeEnd      = Clock(7, 0)
)

type neuroScorer struct{}

func (neuroScorer) Profile() Profile { return ProfileNeuro }

// ScoreDay applies the sleep/PVT-centric formula set. A reaction time
// measurement is required. The total is rounded to the nearest integer.
func (neuroScorer) ScoreDay(in Input) (*Breakdown, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.ReactionTimeMS == nil {
		return nil, &MissingMetricError{Metrics: []string{"reaction_time_ms"}}
	}

	b := &Breakdown{
		SleepScore:         round2(sleepScoreLinear(in.SleepHours)),
		PVTScore:           pvtScore(*in.ReactionTimeMS),
		DietScore:          dietScore(in.DietQuality),
		RecallScore:        round2(clamp(in.RecallPercent*0.3, 0, maxRecallScoreB)),
		ExerciseScore:      round2(exerciseScore(in.ExerciseMinutes, exerciseTargetMinutesB)),
		CircadianPenalty:   circadianWindowPenalty(in.Bedtime, in.WakeTime),
		DistractionPenalty: distractionPenalty(in.ScreenTimeMinutes),
	}

	total := b.SleepScore + b.PVTScore + b.DietScore + b.RecallScore +
		b.ExerciseScore + b.CircadianPenalty + b.DistractionPenalty
	b.TotalIndex = math.Round(clamp(total, 0, 100))

	return b, nil
}

// sleepScoreLinear scales linearly to 20 points at 7.5 hours and caps there;
// unlike the productivity profile it does not penalize oversleeping.
func sleepScoreLinear(hours float64) float64 {
	return math.Min(maxSleepScoreB, hours/optimalSleepHours*maxSleepScoreB)
}

// pvtScore converts mean reaction time to a 0-20 vigilance score:
// full marks at or under 200ms, linear decay of 5 points from 200 to 500ms,
// then 1 additional point lost per 50ms beyond 500ms.
func pvtScore(ms int) float64 {
	if ms <= optimalPVTMS {
		return maxPVTScore
	}
	if ms <= penaltyPVTMS {
		score := maxPVTScore - float64(ms-optimalPVTMS)/float64(penaltyPVTMS-optimalPVTMS)*5
		return round2(score)
	}
	lapsePenalty := float64(ms-penaltyPVTMS) / 50
	return round2(math.Max(0, maxPVTScore-5-lapsePenalty))
}

// circadianWindowPenalty deducts up to 5 points per side for sleeping or
// waking outside the optimal windows (bed 22:00-23:30, wake 05:30-07:00),
// 1 point per started hour of deviation, capped at 10 total. The magnitude
// is returned as a signed negative value so it sums with the other
// penalties. Same-day time comparison, no midnight wraparound.
func circadianWindowPenalty(bedtime, wakeTime TimeOfDay) float64 {
	penalty := 0.0
	if dev := hoursOutsideWindow(bedtime, optimalBedtimeStart, optimalBedtimeEnd); dev > 0 {
		penalty += math.Min(circadianSidePenaltyCap, math.Ceil(dev))
	}
	if dev := hoursOutsideWindow(wakeTime, optimalWakeStart, optimalWakeEnd); dev > 0 {
		penalty += math.Min(circadianSidePenaltyCap, math.Ceil(dev))
	}
	return -math.Min(maxPenalty, penalty)
}
