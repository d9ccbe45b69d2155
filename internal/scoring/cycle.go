package scoring

import "time"

const (
	// CycleLengthDays is the fixed cycle length used for day/phase mapping.
	CycleLengthDays = 28
	// DefaultCycleDay is assumed mid-cycle when no reference date is set.
	DefaultCycleDay = 14
)

// Cycle phase labels.
const (
	PhaseMenstrual  = "Menstrual Phase"
	PhaseFollicular = "Follicular Phase"
	PhaseOvulation  = "Ovulation Phase"
	PhaseLuteal     = "Luteal Phase"
)

// CycleDay computes the 1-28 cycle day for a date given the last period
// date. Returns DefaultCycleDay when lastPeriod is nil. Both arguments are
// treated as calendar dates; time-of-day and zone are ignored.
func CycleDay(lastPeriod *time.Time, today time.Time) int {
	if lastPeriod == nil {
		return DefaultCycleDay
	}
	days := daysBetween(*lastPeriod, today)
	// Normalize so a reference date in the future still lands in [1, 28].
	return ((days%CycleLengthDays)+CycleLengthDays)%CycleLengthDays + 1
}

// CyclePhase maps a cycle day to its phase label: 1-5 menstrual,
// 6-13 follicular, 14-16 ovulation, 17-28 luteal.
func CyclePhase(day int) string {
	switch {
	case day >= 1 && day <= 5:
		return PhaseMenstrual
	case day >= 6 && day <= 13:
		return PhaseFollicular
	case day >= 14 && day <= 16:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
