package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/neuro-os/neuro-index/internal/domain"
)

// MockEntryRepository is a mock implementation of EntryRepository
type MockEntryRepository struct {
	entries map[string]*domain.DailyEntry // keyed by YYYY-MM-DD
	err     error
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.DailyEntry),
	}
}

func (m *MockEntryRepository) Upsert(ctx context.Context, entry *domain.DailyEntry) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	key := entry.Date.Format(domain.DateFormat)
	existing, ok := m.entries[key]
	if ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		m.entries[key] = entry
		return false, nil
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.entries[key] = entry
	return true, nil
}

func (m *MockEntryRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[date.Format(domain.DateFormat)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *MockEntryRepository) Latest(ctx context.Context) (*domain.DailyEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	sorted := m.sortedDesc()
	if len(sorted) == 0 {
		return nil, domain.ErrNotFound
	}
	return &sorted[0], nil
}

func (m *MockEntryRepository) List(ctx context.Context, filter domain.EntryFilter) ([]domain.DailyEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyEntry
	for _, entry := range m.sortedDesc() {
		if filter.From != nil && entry.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.Date.After(*filter.To) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (m *MockEntryRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.DailyEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyEntry
	for _, entry := range m.sortedDesc() {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (m *MockEntryRepository) sortedDesc() []domain.DailyEntry {
	var result []domain.DailyEntry
	for _, entry := range m.entries {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	lastPeriodDate *time.Time
	err            error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) GetLastPeriodDate(ctx context.Context) (*time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lastPeriodDate, nil
}

func (m *MockSettingsRepository) SetLastPeriodDate(ctx context.Context, date time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.lastPeriodDate = &date
	return nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	output *domain.LLMInsightsOutput
	err    error
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.output != nil {
		return m.output, nil
	}
	return &domain.LLMInsightsOutput{
		Summary:      "Steady week.",
		Observations: []string{"Index stable"},
		Guidance:     []string{"Keep bedtime consistent"},
	}, nil
}
