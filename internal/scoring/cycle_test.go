package scoring

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleDay(t *testing.T) {
	today := date(2025, time.March, 15)

	tests := []struct {
		name       string
		lastPeriod *time.Time
		today      time.Time
		want       int
	}{
		{"unset defaults to mid-cycle", nil, today, 14},
		{"same day", ptr(date(2025, time.March, 15)), today, 1},
		{"day ten", ptr(date(2025, time.March, 6)), today, 10},
		{"wraps after 28 days", ptr(date(2025, time.February, 15)), today, 1},
		{"multiple cycles back", ptr(date(2024, time.December, 20)), today, 2}, // 85 days = 3 cycles + 1

		{"future reference stays in range", ptr(date(2025, time.March, 20)), today, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CycleDay(tt.lastPeriod, tt.today)
			if got != tt.want {
				t.Errorf("CycleDay = %d, want %d", got, tt.want)
			}
			if got < 1 || got > CycleLengthDays {
				t.Errorf("CycleDay = %d outside [1, %d]", got, CycleLengthDays)
			}
		})
	}
}

func TestCyclePhase(t *testing.T) {
	tests := []struct {
		day  int
		want string
	}{
		{1, PhaseMenstrual},
		{5, PhaseMenstrual},
		{6, PhaseFollicular},
		{13, PhaseFollicular},
		{14, PhaseOvulation},
		{16, PhaseOvulation},
		{17, PhaseLuteal},
		{28, PhaseLuteal},
	}
	for _, tt := range tests {
		if got := CyclePhase(tt.day); got != tt.want {
			t.Errorf("CyclePhase(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"22:30", Clock(22, 30), false},
		{"00:00", Clock(0, 0), false},
		{"23:59", Clock(23, 59), false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noonish", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if s := Clock(6, 5).String(); s != "06:05" {
		t.Errorf("String() = %q, want 06:05", s)
	}
}

func ptr(t time.Time) *time.Time { return &t }
