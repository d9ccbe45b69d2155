package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/scoring"
)

// MockEntryService is a mock implementation of EntryService
type MockEntryService struct {
	createFunc    func(ctx context.Context, req *domain.CreateEntryRequest) (*domain.DailyEntry, bool, error)
	getByDateFunc func(ctx context.Context, date string) (*domain.DailyEntry, error)
	latestFunc    func(ctx context.Context) (*domain.DailyEntry, error)
	listFunc      func(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error)
}

func sampleEntry(date string) *domain.DailyEntry {
	parsed, _ := time.Parse(domain.DateFormat, date)
	return &domain.DailyEntry{
		ID:          uuid.New(),
		Date:        parsed,
		StudyHours:  8,
		SleepHours:  7.5,
		Bedtime:     "22:00",
		WakeTime:    "06:00",
		DietQuality: 7,
		CycleDay:    scoring.DefaultCycleDay,
		Profile:     string(scoring.ProfileProductivity),
		TotalIndex:  95,
		CreatedAt:   time.Now(),
	}
}

func (m *MockEntryService) Create(ctx context.Context, req *domain.CreateEntryRequest) (*domain.DailyEntry, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return sampleEntry(req.Date), true, nil
}

func (m *MockEntryService) GetByDate(ctx context.Context, date string) (*domain.DailyEntry, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, date)
	}
	return sampleEntry(date), nil
}

func (m *MockEntryService) Latest(ctx context.Context) (*domain.DailyEntry, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx)
	}
	return sampleEntry("2025-03-15"), nil
}

func (m *MockEntryService) List(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.EntryListResponse{
		Data:       []domain.EntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	summaryFunc func(ctx context.Context, windowDays int) (*domain.SummaryResponse, error)
}

func (m *MockDashboardService) Summary(ctx context.Context, windowDays int) (*domain.SummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, windowDays)
	}
	return &domain.SummaryResponse{WindowDays: windowDays}, nil
}

func (m *MockDashboardService) ComputeWindow(ctx context.Context, from, to time.Time) (*domain.WindowSummary, error) {
	return &domain.WindowSummary{
		From: from.Format(domain.DateFormat),
		To:   to.Format(domain.DateFormat),
	}, nil
}

func (m *MockDashboardService) LatestSnapshot(ctx context.Context) (*domain.LatestSnapshot, error) {
	return nil, nil
}

// MockCycleService is a mock implementation of CycleService
type MockCycleService struct {
	getFunc func(ctx context.Context, date time.Time) (*domain.CycleResponse, error)
	setFunc func(ctx context.Context, lastPeriod time.Time) (*domain.CycleResponse, error)
}

func (m *MockCycleService) Get(ctx context.Context, date time.Time) (*domain.CycleResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, date)
	}
	return &domain.CycleResponse{
		Date:       date.Format(domain.DateFormat),
		CycleDay:   scoring.DefaultCycleDay,
		CyclePhase: scoring.PhaseOvulation,
	}, nil
}

func (m *MockCycleService) SetLastPeriodDate(ctx context.Context, lastPeriod time.Time) (*domain.CycleResponse, error) {
	if m.setFunc != nil {
		return m.setFunc(ctx, lastPeriod)
	}
	formatted := lastPeriod.Format(domain.DateFormat)
	return &domain.CycleResponse{
		Date:           time.Now().UTC().Format(domain.DateFormat),
		LastPeriodDate: &formatted,
		CycleDay:       1,
		CyclePhase:     scoring.PhaseMenstrual,
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.InsightsResponse{
		Insights: domain.LLMInsightsOutput{Summary: "Steady week."},
	}, nil
}
