package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/scoring"
)

const validEntryBody = `{
	"date": "2025-03-15",
	"study_hours": 8,
	"screen_time_minutes": 45,
	"recall_percent": 80,
	"sleep_hours": 7.5,
	"bedtime": "22:00",
	"wake_time": "06:00",
	"diet_quality": 7,
	"exercise_minutes": 30,
	"sunlight_minutes": 20
}`

func newEntryRouter(svc *MockEntryService) http.Handler {
	h := NewEntryHandler(svc)
	r := chi.NewRouter()
	r.Post("/v1/entries", h.Create)
	r.Get("/v1/entries", h.List)
	r.Get("/v1/entries/latest", h.Latest)
	r.Get("/v1/entries/{date}", h.GetByDate)
	return r
}

func TestEntryHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockEntryService
		wantStatusCode int
	}{
		{
			name:           "new entry returns 201",
			body:           validEntryBody,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "replaced entry returns 200",
			body: validEntryBody,
			mockService: &MockEntryService{
				createFunc: func(ctx context.Context, req *domain.CreateEntryRequest) (*domain.DailyEntry, bool, error) {
					return sampleEntry(req.Date), false, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{not json`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing date fails validation",
			body:           `{"bedtime": "22:00", "wake_time": "06:00"}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed bedtime fails validation",
			body:           `{"date": "2025-03-15", "bedtime": "25:00", "wake_time": "06:00"}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "diet quality above bound fails validation",
			body:           `{"date": "2025-03-15", "bedtime": "22:00", "wake_time": "06:00", "diet_quality": 11}`,
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "out-of-domain metric returns 422",
			body: validEntryBody,
			mockService: &MockEntryService{
				createFunc: func(ctx context.Context, req *domain.CreateEntryRequest) (*domain.DailyEntry, bool, error) {
					return nil, false, &scoring.OutOfDomainError{Metric: "sleep_hours", Value: 17, Min: 0, Max: 16}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "missing metric returns 422",
			body: validEntryBody,
			mockService: &MockEntryService{
				createFunc: func(ctx context.Context, req *domain.CreateEntryRequest) (*domain.DailyEntry, bool, error) {
					return nil, false, &scoring.MissingMetricError{Metrics: []string{"reaction_time_ms"}}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEntryRouter(tt.mockService)
			req := httptest.NewRequest(http.MethodPost, "/v1/entries", bytes.NewBufferString(tt.body))
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d, body: %s", resp.Code, tt.wantStatusCode, resp.Body.String())
			}
		})
	}
}

func TestEntryHandler_CreateResponseBody(t *testing.T) {
	router := newEntryRouter(&MockEntryService{})
	req := httptest.NewRequest(http.MethodPost, "/v1/entries", bytes.NewBufferString(validEntryBody))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", resp.Code, resp.Body.String())
	}

	var body domain.EntryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Date != "2025-03-15" {
		t.Errorf("Date = %q, want 2025-03-15", body.Date)
	}
	if body.TotalIndex != 95 {
		t.Errorf("TotalIndex = %v, want 95", body.TotalIndex)
	}
	if body.CyclePhase != scoring.PhaseOvulation {
		t.Errorf("CyclePhase = %q, want %q", body.CyclePhase, scoring.PhaseOvulation)
	}
	if body.Category != "Elite" {
		t.Errorf("Category = %q, want Elite", body.Category)
	}
}

func TestEntryHandler_GetByDate(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockService    *MockEntryService
		wantStatusCode int
	}{
		{
			name:           "existing date",
			path:           "/v1/entries/2025-03-15",
			mockService:    &MockEntryService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "missing date returns 404",
			path: "/v1/entries/2025-03-16",
			mockService: &MockEntryService{
				getByDateFunc: func(ctx context.Context, date string) (*domain.DailyEntry, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "malformed date returns 400",
			path: "/v1/entries/yesterday",
			mockService: &MockEntryService{
				getByDateFunc: func(ctx context.Context, date string) (*domain.DailyEntry, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEntryRouter(tt.mockService)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d, body: %s", resp.Code, tt.wantStatusCode, resp.Body.String())
			}
		})
	}
}

func TestEntryHandler_Latest(t *testing.T) {
	router := newEntryRouter(&MockEntryService{
		latestFunc: func(ctx context.Context) (*domain.DailyEntry, error) {
			return nil, domain.ErrNotFound
		},
	})
	req := httptest.NewRequest(http.MethodGet, "/v1/entries/latest", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.Code)
	}
}

func TestEntryHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		wantStatusCode int
	}{
		{"no filters", "", http.StatusOK},
		{"date range", "?from=2025-03-01&to=2025-03-31", http.StatusOK},
		{"limit", "?limit=5", http.StatusOK},
		{"bad from", "?from=notadate", http.StatusUnprocessableEntity},
		{"bad limit", "?limit=zero", http.StatusUnprocessableEntity},
		{"negative limit", "?limit=-1", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter domain.EntryFilter
			router := newEntryRouter(&MockEntryService{
				listFunc: func(ctx context.Context, filter domain.EntryFilter) (*domain.EntryListResponse, error) {
					gotFilter = filter
					return &domain.EntryListResponse{Data: []domain.EntryResponse{}}, nil
				},
			})
			req := httptest.NewRequest(http.MethodGet, "/v1/entries"+tt.query, nil)
			resp := httptest.NewRecorder()

			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d, body: %s", resp.Code, tt.wantStatusCode, resp.Body.String())
			}
			if tt.name == "date range" && (gotFilter.From == nil || gotFilter.To == nil) {
				t.Error("date range filter was not parsed")
			}
			if tt.name == "limit" && gotFilter.Limit != 5 {
				t.Errorf("Limit = %d, want 5", gotFilter.Limit)
			}
		})
	}
}
