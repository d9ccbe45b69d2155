package service

import (
	"context"
	"time"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/llm"
)

const (
	// Window sizes for insights
	HistoryWindowDays = 30
	RecentWindowDays  = 7
)

// InsightsService generates LLM-backed productivity insights.
type InsightsService interface {
	// Generate creates insights from recent score windows.
	Generate(ctx context.Context) (*domain.InsightsResponse, error)
}

type insightsService struct {
	dashboardService DashboardService
	llmClient        llm.InsightsLLM
}

// NewInsightsService creates a new InsightsService. llmClient may be nil
// when no API key is configured; Generate then fails with ErrUnavailable.
func NewInsightsService(dashboardService DashboardService, llmClient llm.InsightsLLM) InsightsService {
	return &insightsService{
		dashboardService: dashboardService,
		llmClient:        llmClient,
	}
}

func (s *insightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	if s.llmClient == nil {
		return nil, domain.ErrUnavailable
	}

	now := time.Now().UTC()

	// Compute history metrics (~30 days)
	historyFrom := now.AddDate(0, 0, -HistoryWindowDays)
	history, err := s.dashboardService.ComputeWindow(ctx, historyFrom, now)
	if err != nil {
		return nil, err
	}

	// Compute recent metrics (~7 days)
	recentFrom := now.AddDate(0, 0, -RecentWindowDays)
	recent, err := s.dashboardService.ComputeWindow(ctx, recentFrom, now)
	if err != nil {
		return nil, err
	}

	latest, err := s.dashboardService.LatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	insightsCtx := &domain.InsightsContext{
		History: *history,
		Recent:  *recent,
		Latest:  latest,
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{Insights: *llmOutput}
	response.Metrics.History = *history
	response.Metrics.Recent = *recent

	return response, nil
}
