package scoring

import "math"

// Productivity profile constants. Component maxima sum to 100 before
// penalties.
const (
	maxStudyScore    = 30.0
	studyTargetHours = 8.0

	maxRecallScoreA = 20.0

	maxSleepScoreA    = 20.0
	optimalSleepHours = 7.5

	maxDietScore = 20.0

	maxExerciseScore       = 10.0
	exerciseTargetMinutesA = 30.0

	sunlightBonus        = 5.0
	sunlightBonusMinutes = 15

	maxPenalty = 10.0
)

// Circadian thresholds for the productivity profile. Strictly-greater
// triggers the penalty; equal-to does not.
var (
	lateBedtime     = Clock(22, 30) // -3
	veryLateBedtime = Clock(23, 30) // -5
	lateWakeTime    = Clock(6, 30)  // -2
)

type productivityScorer struct{}

func (productivityScorer) Profile() Profile { return ProfileProductivity }

// ScoreDay applies the productivity-first formula set. Every component and
// the total are rounded to 2 decimals.
func (productivityScorer) ScoreDay(in Input) (*Breakdown, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	b := &Breakdown{
		StudyScore:         round2(studyScore(in.StudyHours)),
		RecallScore:        round2(recallScore(in.RecallPercent)),
		SleepScore:         round2(sleepScoreCentered(in.SleepHours)),
		DietScore:          round2(dietScore(in.DietQuality)),
		ExerciseScore:      round2(exerciseScore(in.ExerciseMinutes, exerciseTargetMinutesA)),
		SunlightScore:      round2(sunlightScore(in.SunlightMinutes)),
		CircadianPenalty:   round2(circadianThresholdPenalty(in.Bedtime, in.WakeTime)),
		DistractionPenalty: round2(distractionPenalty(in.ScreenTimeMinutes)),
	}

	total := b.StudyScore + b.RecallScore + b.SleepScore + b.DietScore +
		b.ExerciseScore + b.SunlightScore + b.CircadianPenalty + b.DistractionPenalty
	b.TotalIndex = round2(clamp(total, 0, 100))

	return b, nil
}

// studyScore scales linearly to 30 points at 8 hours.
func studyScore(hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	if hours >= studyTargetHours {
		return maxStudyScore
	}
	return hours / studyTargetHours * maxStudyScore
}

// recallScore converts recall percentage directly: percent * 0.2.
func recallScore(percent float64) float64 {
	return clamp(percent*0.2, 0, maxRecallScoreA)
}

// sleepScoreCentered peaks at 7.5 hours and loses 2 points per hour of
// deviation in either direction.
func sleepScoreCentered(hours float64) float64 {
	score := maxSleepScoreA - 2*math.Abs(hours-optimalSleepHours)
	return clamp(score, 0, maxSleepScoreA)
}

// dietScore converts the 0-10 quality rating directly: quality * 2.
func dietScore(quality int) float64 {
	return clamp(float64(quality)*2, 0, maxDietScore)
}

// exerciseScore scales linearly to 10 points at the target minutes.
func exerciseScore(minutes int, targetMinutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return math.Min(maxExerciseScore, float64(minutes)/targetMinutes*maxExerciseScore)
}

// sunlightScore awards a flat 5-point bonus at 15+ minutes of exposure.
func sunlightScore(minutes int) float64 {
	if minutes >= sunlightBonusMinutes {
		return sunlightBonus
	}
	return 0
}

// circadianThresholdPenalty deducts for late bedtimes and wake times:
// bedtime after 23:30 costs 5, after 22:30 costs 3, waking after 06:30 costs
// another 2, floored at -10. Bedtimes are compared as same-day times, so a
// past-midnight bedtime reads as early morning.
func circadianThresholdPenalty(bedtime, wakeTime TimeOfDay) float64 {
	penalty := 0.0
	if bedtime.After(veryLateBedtime) {
		penalty -= 5
	} else if bedtime.After(lateBedtime) {
		penalty -= 3
	}
	if wakeTime.After(lateWakeTime) {
		penalty -= 2
	}
	return math.Max(-maxPenalty, penalty)
}

// distractionPenalty deducts 2 points per full 30-minute block of screen
// time beyond the first hour, floored at -10.
func distractionPenalty(screenTimeMinutes int) float64 {
	if screenTimeMinutes <= 60 {
		return 0
	}
	blocks := (screenTimeMinutes - 60) / 30
	return math.Max(-maxPenalty, float64(blocks)*-2)
}
