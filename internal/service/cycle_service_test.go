package service

import (
	"context"
	"testing"
	"time"

	"github.com/neuro-os/neuro-index/internal/scoring"
)

func TestCycleService_GetWithoutReferenceDate(t *testing.T) {
	svc := NewCycleService(NewMockSettingsRepository())

	response, err := svc.Get(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if response.CycleDay != scoring.DefaultCycleDay {
		t.Errorf("CycleDay = %d, want default %d", response.CycleDay, scoring.DefaultCycleDay)
	}
	if response.CyclePhase != scoring.PhaseOvulation {
		t.Errorf("CyclePhase = %q, want %q", response.CyclePhase, scoring.PhaseOvulation)
	}
	if response.LastPeriodDate != nil {
		t.Errorf("LastPeriodDate = %v, want nil", *response.LastPeriodDate)
	}
}

func TestCycleService_GetWithReferenceDate(t *testing.T) {
	settingsRepo := NewMockSettingsRepository()
	reference := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	settingsRepo.lastPeriodDate = &reference

	svc := NewCycleService(settingsRepo)
	response, err := svc.Get(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if response.CycleDay != 10 {
		t.Errorf("CycleDay = %d, want 10", response.CycleDay)
	}
	if response.CyclePhase != scoring.PhaseFollicular {
		t.Errorf("CyclePhase = %q, want %q", response.CyclePhase, scoring.PhaseFollicular)
	}
	if response.LastPeriodDate == nil || *response.LastPeriodDate != "2025-03-01" {
		t.Errorf("LastPeriodDate = %v, want 2025-03-01", response.LastPeriodDate)
	}
}

func TestCycleService_SetLastPeriodDate(t *testing.T) {
	settingsRepo := NewMockSettingsRepository()
	svc := NewCycleService(settingsRepo)

	reference := time.Now().UTC().AddDate(0, 0, -4)
	response, err := svc.SetLastPeriodDate(context.Background(), reference)
	if err != nil {
		t.Fatalf("SetLastPeriodDate: %v", err)
	}

	if settingsRepo.lastPeriodDate == nil {
		t.Fatal("reference date was not persisted")
	}
	if response.CycleDay != 5 {
		t.Errorf("CycleDay = %d, want 5", response.CycleDay)
	}
	if response.CyclePhase != scoring.PhaseMenstrual {
		t.Errorf("CyclePhase = %q, want %q", response.CyclePhase, scoring.PhaseMenstrual)
	}
}
