package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/neuro-os/neuro-index/internal/service"
	"github.com/neuro-os/neuro-index/pkg/problem"
)

// DashboardHandler serves display-only aggregates over stored entries.
type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /v1/dashboard/summary
// @Summary Get dashboard summary
// @Description Descriptive statistics and component averages over a trailing window, plus the latest entry snapshot. Aggregates are recomputed from stored entries on every call.
// @Tags dashboard
// @Produce json
// @Param window_days query integer false "Trailing window in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.SummaryResponse "Window summary"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	windowDays := service.DefaultSummaryWindowDays
	if raw := r.URL.Query().Get("window_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 365 {
			problem.BadRequest("window_days must be between 1 and 365").Write(w)
			return
		}
		windowDays = parsed
	}

	response, err := h.service.Summary(r.Context(), windowDays)
	if err != nil {
		problem.InternalError("Failed to compute summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
