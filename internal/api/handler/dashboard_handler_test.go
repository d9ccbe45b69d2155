package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/llm"
	"github.com/neuro-os/neuro-index/internal/service"
)

func TestDashboardHandler_Summary(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantStatusCode int
		wantWindowDays int
	}{
		{"default window", "", http.StatusOK, service.DefaultSummaryWindowDays},
		{"explicit window", "?window_days=7", http.StatusOK, 7},
		{"non-numeric window", "?window_days=week", http.StatusBadRequest, 0},
		{"zero window", "?window_days=0", http.StatusBadRequest, 0},
		{"oversized window", "?window_days=400", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotWindowDays int
			h := NewDashboardHandler(&MockDashboardService{
				summaryFunc: func(ctx context.Context, windowDays int) (*domain.SummaryResponse, error) {
					gotWindowDays = windowDays
					return &domain.SummaryResponse{WindowDays: windowDays}, nil
				},
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary"+tt.query, nil)
			resp := httptest.NewRecorder()

			h.Summary(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d, body: %s", resp.Code, tt.wantStatusCode, resp.Body.String())
			}
			if tt.wantStatusCode == http.StatusOK && gotWindowDays != tt.wantWindowDays {
				t.Errorf("windowDays = %d, want %d", gotWindowDays, tt.wantWindowDays)
			}
		})
	}
}

func TestInsightsHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		mockService    *MockInsightsService
		wantStatusCode int
	}{
		{
			name:           "insights generated",
			mockService:    &MockInsightsService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "LLM not configured",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context) (*domain.InsightsResponse, error) {
					return nil, domain.ErrUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name: "LLM request failed",
			mockService: &MockInsightsService{
				generateFunc: func(ctx context.Context) (*domain.InsightsResponse, error) {
					return nil, llm.ErrOpenAIRequest
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewInsightsHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodGet, "/v1/insights", nil)
			resp := httptest.NewRecorder()

			h.Get(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d, body: %s", resp.Code, tt.wantStatusCode, resp.Body.String())
			}
		})
	}
}
