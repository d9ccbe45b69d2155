package service

import (
	"context"
	"time"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/repository"
	"github.com/neuro-os/neuro-index/internal/scoring"
)

// CycleService manages the cycle reference date and derives day/phase from
// it. The cycle day is recomputed on every read, never stored with the
// configuration.
type CycleService interface {
	// Get computes the cycle day and phase for a date.
	Get(ctx context.Context, date time.Time) (*domain.CycleResponse, error)
	// SetLastPeriodDate stores the reference date and returns the resulting
	// cycle state for today.
	SetLastPeriodDate(ctx context.Context, lastPeriod time.Time) (*domain.CycleResponse, error)
}

type cycleService struct {
	settingsRepo repository.SettingsRepository
}

func NewCycleService(settingsRepo repository.SettingsRepository) CycleService {
	return &cycleService{settingsRepo: settingsRepo}
}

func (s *cycleService) Get(ctx context.Context, date time.Time) (*domain.CycleResponse, error) {
	lastPeriod, err := s.settingsRepo.GetLastPeriodDate(ctx)
	if err != nil {
		return nil, err
	}

	day := scoring.CycleDay(lastPeriod, date)

	response := &domain.CycleResponse{
		Date:       date.Format(domain.DateFormat),
		CycleDay:   day,
		CyclePhase: scoring.CyclePhase(day),
	}
	if lastPeriod != nil {
		formatted := lastPeriod.Format(domain.DateFormat)
		response.LastPeriodDate = &formatted
	}

	return response, nil
}

func (s *cycleService) SetLastPeriodDate(ctx context.Context, lastPeriod time.Time) (*domain.CycleResponse, error) {
	if err := s.settingsRepo.SetLastPeriodDate(ctx, lastPeriod); err != nil {
		return nil, err
	}
	return s.Get(ctx, time.Now().UTC())
}
