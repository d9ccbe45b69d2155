package scoring

import (
	"fmt"
	"math"
)

// TimeOfDay is a naive wall-clock time, stored as minutes after midnight.
// Comparisons are total-order on the same calendar day; there is no
// wraparound across midnight. A bedtime of 00:30 therefore compares as
// earlier than 22:00 — this mirrors how the formulas are defined and is a
// known ambiguity for very late bedtimes.
type TimeOfDay int

// Clock builds a TimeOfDay from hour and minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM" in 24-hour format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("time must be in HH:MM format (24-hour): %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time must be in HH:MM format (24-hour): %q", s)
	}
	return Clock(h, m), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// After reports whether t is strictly later in the day than o.
func (t TimeOfDay) After(o TimeOfDay) bool { return t > o }

// Before reports whether t is strictly earlier in the day than o.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t < o }

// HoursAfter returns the deviation from o in hours, positive when t is later.
func (t TimeOfDay) HoursAfter(o TimeOfDay) float64 {
	return float64(t-o) / 60.0
}

// hoursOutsideWindow returns how many hours a time falls outside the
// inclusive window [start, end], or 0 when inside it.
func hoursOutsideWindow(t, start, end TimeOfDay) float64 {
	if t.Before(start) {
		return start.HoursAfter(t)
	}
	if t.After(end) {
		return t.HoursAfter(end)
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
