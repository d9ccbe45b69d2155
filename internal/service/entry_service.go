package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/repository"
	"github.com/neuro-os/neuro-index/internal/scoring"
	"github.com/neuro-os/neuro-index/pkg/pagination"
)

type EntryService interface {
	// Create scores a day's raw metrics and persists the result, replacing
	// any existing entry for the same date. Returns (entry, created, error);
	// created is false when an existing date was overwritten.
	Create(ctx context.Context, req *domain.CreateEntryRequest) (*domain.DailyEntry, bool, error)
	GetByDate(ctx context.Context, date string) (*domain.DailyEntry, error)
	Latest(ctx context.Context) (*domain.DailyEntry, error)
	List(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error)
}

type entryService struct {
	repo         repository.EntryRepository
	settingsRepo repository.SettingsRepository
	scorer       scoring.Scorer
}

func NewEntryService(repo repository.EntryRepository, settingsRepo repository.SettingsRepository, scorer scoring.Scorer) EntryService {
	return &entryService{
		repo:         repo,
		settingsRepo: settingsRepo,
		scorer:       scorer,
	}
}

func (s *entryService) Create(ctx context.Context, req *domain.CreateEntryRequest) (*domain.DailyEntry, bool, error) {
	entryDate, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, false, domain.ErrInvalidInput
	}

	bedtime, err := scoring.ParseTimeOfDay(req.Bedtime)
	if err != nil {
		return nil, false, domain.ErrInvalidInput
	}
	wakeTime, err := scoring.ParseTimeOfDay(req.WakeTime)
	if err != nil {
		return nil, false, domain.ErrInvalidInput
	}

	// Run the configured scoring profile. Engine errors (OutOfDomain,
	// MissingMetric) surface to the caller unchanged.
	breakdown, err := s.scorer.ScoreDay(scoring.Input{
		StudyHours:        req.StudyHours,
		SleepHours:        req.SleepHours,
		Bedtime:           bedtime,
		WakeTime:          wakeTime,
		DietQuality:       req.DietQuality,
		ExerciseMinutes:   req.ExerciseMinutes,
		RecallPercent:     req.RecallPercent,
		ScreenTimeMinutes: req.ScreenTimeMinutes,
		SunlightMinutes:   req.SunlightMinutes,
		ReactionTimeMS:    req.ReactionTimeMS,
	})
	if err != nil {
		return nil, false, err
	}

	// Cycle day is contextual metadata, computed for the entry's own date.
	lastPeriod, err := s.settingsRepo.GetLastPeriodDate(ctx)
	if err != nil {
		return nil, false, err
	}
	cycleDay := scoring.CycleDay(lastPeriod, entryDate)

	roi := scoring.CognitiveROI(req.RecallPercent, req.StudyHours)

	entry := &domain.DailyEntry{
		Date:               entryDate,
		StudyHours:         req.StudyHours,
		ScreenTimeMinutes:  req.ScreenTimeMinutes,
		RecallPercent:      req.RecallPercent,
		SleepHours:         req.SleepHours,
		Bedtime:            bedtime.String(),
		WakeTime:           wakeTime.String(),
		DietQuality:        req.DietQuality,
		ExerciseMinutes:    req.ExerciseMinutes,
		SunlightMinutes:    req.SunlightMinutes,
		ReactionTimeMS:     req.ReactionTimeMS,
		CycleDay:           cycleDay,
		Profile:            string(s.scorer.Profile()),
		StudyScore:         breakdown.StudyScore,
		RecallScore:        breakdown.RecallScore,
		SleepScore:         breakdown.SleepScore,
		DietScore:          breakdown.DietScore,
		ExerciseScore:      breakdown.ExerciseScore,
		SunlightScore:      breakdown.SunlightScore,
		PVTScore:           breakdown.PVTScore,
		CircadianPenalty:   breakdown.CircadianPenalty,
		DistractionPenalty: breakdown.DistractionPenalty,
		TotalIndex:         breakdown.TotalIndex,
		CognitiveROI:       math.Round(roi*100) / 100,
	}

	created, err := s.repo.Upsert(ctx, entry)
	if err != nil {
		return nil, false, err
	}

	return entry, created, nil
}

func (s *entryService) GetByDate(ctx context.Context, date string) (*domain.DailyEntry, error) {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return s.repo.GetByDate(ctx, parsed)
}

func (s *entryService) Latest(ctx context.Context) (*domain.DailyEntry, error) {
	return s.repo.Latest(ctx)
}

func (s *entryService) List(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit

	// Trim to actual limit
	if hasMore {
		entries = entries[:limit]
	}

	// Build response
	response := &domain.EntryListResponse{
		Data: make([]domain.EntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, entry := range entries {
		response.Data[i] = entry.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{Date: last.Date}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
