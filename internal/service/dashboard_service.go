package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/repository"
	"github.com/neuro-os/neuro-index/internal/scoring"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultSummaryWindowDays is the default window for dashboard aggregates.
	DefaultSummaryWindowDays = 30
)

// DashboardService recomputes display-only aggregates from stored entries.
type DashboardService interface {
	// Summary calculates window aggregates plus the latest entry snapshot.
	Summary(ctx context.Context, windowDays int) (*domain.SummaryResponse, error)
	// ComputeWindow calculates a WindowSummary for a specific date range.
	ComputeWindow(ctx context.Context, from, to time.Time) (*domain.WindowSummary, error)
	// LatestSnapshot returns the most recent entry's headline numbers, or
	// nil when no entries exist.
	LatestSnapshot(ctx context.Context) (*domain.LatestSnapshot, error)
}

type dashboardService struct {
	entryRepo repository.EntryRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(entryRepo repository.EntryRepository) DashboardService {
	return &dashboardService{entryRepo: entryRepo}
}

func (s *dashboardService) Summary(ctx context.Context, windowDays int) (*domain.SummaryResponse, error) {
	if windowDays <= 0 {
		windowDays = DefaultSummaryWindowDays
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -windowDays)

	summary, err := s.ComputeWindow(ctx, from, now)
	if err != nil {
		return nil, err
	}

	latest, err := s.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SummaryResponse{
		WindowDays: windowDays,
		Summary:    *summary,
		Latest:     latest,
	}, nil
}

func (s *dashboardService) ComputeWindow(ctx context.Context, from, to time.Time) (*domain.WindowSummary, error) {
	tracer := otel.Tracer("neuro-index-api/dashboard")
	ctx, span := tracer.Start(ctx, "DashboardService.ComputeWindow",
		trace.WithAttributes(
			attribute.String("window.from", from.Format(domain.DateFormat)),
			attribute.String("window.to", to.Format(domain.DateFormat)),
		),
	)
	defer span.End()

	entries, err := s.entryRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("window.entries", len(entries)))

	summary := computeWindowSummary(entries, from, to)
	return &summary, nil
}

func (s *dashboardService) LatestSnapshot(ctx context.Context) (*domain.LatestSnapshot, error) {
	entry, err := s.entryRepo.Latest(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	label, description := scoring.PerformanceCategory(int(math.Round(entry.TotalIndex)))
	return &domain.LatestSnapshot{
		Date:                entry.Date.Format(domain.DateFormat),
		TotalIndex:          entry.TotalIndex,
		Category:            label,
		CategoryDescription: description,
		CognitiveROI:        entry.CognitiveROI,
	}, nil
}

// computeWindowSummary aggregates a window of entries into descriptive
// statistics and component averages.
func computeWindowSummary(entries []domain.DailyEntry, from, to time.Time) domain.WindowSummary {
	summary := domain.WindowSummary{
		From:       from.Format(domain.DateFormat),
		To:         to.Format(domain.DateFormat),
		EntryCount: len(entries),
	}

	if len(entries) == 0 {
		return summary
	}

	totals := make([]float64, len(entries))
	study := make([]float64, len(entries))
	sleep := make([]float64, len(entries))
	roi := make([]float64, len(entries))
	for i, e := range entries {
		totals[i] = e.TotalIndex
		study[i] = e.StudyHours
		sleep[i] = e.SleepHours
		roi[i] = e.CognitiveROI
	}

	summary.TotalIndex = computeStats(totals)
	summary.StudyHours = computeStats(study)
	summary.SleepHours = computeStats(sleep)
	summary.CognitiveROI = computeStats(roi)
	summary.Components = computeComponentAverages(entries)

	return summary
}

func computeComponentAverages(entries []domain.DailyEntry) domain.ComponentAverages {
	var avg domain.ComponentAverages
	if len(entries) == 0 {
		return avg
	}

	for _, e := range entries {
		avg.StudyScore += e.StudyScore
		avg.RecallScore += e.RecallScore
		avg.SleepScore += e.SleepScore
		avg.DietScore += e.DietScore
		avg.ExerciseScore += e.ExerciseScore
		avg.SunlightScore += e.SunlightScore
		avg.PVTScore += e.PVTScore
		avg.CircadianPenalty += e.CircadianPenalty
		avg.DistractionPenalty += e.DistractionPenalty
	}

	n := float64(len(entries))
	avg.StudyScore = round2(avg.StudyScore / n)
	avg.RecallScore = round2(avg.RecallScore / n)
	avg.SleepScore = round2(avg.SleepScore / n)
	avg.DietScore = round2(avg.DietScore / n)
	avg.ExerciseScore = round2(avg.ExerciseScore / n)
	avg.SunlightScore = round2(avg.SunlightScore / n)
	avg.PVTScore = round2(avg.PVTScore / n)
	avg.CircadianPenalty = round2(avg.CircadianPenalty / n)
	avg.DistractionPenalty = round2(avg.DistractionPenalty / n)
	return avg
}

// computeStats calculates descriptive statistics for a slice of values.
func computeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	std := 0.0
	if len(values) > 1 {
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return domain.DescriptiveStats{
		Avg: round2(avg),
		Std: round2(std),
		Min: round2(minVal),
		Max: round2(maxVal),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
