package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/neuro-os/neuro-index/internal/api/validation"
	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/service"
	"github.com/neuro-os/neuro-index/pkg/problem"
)

type CycleHandler struct {
	service service.CycleService
}

func NewCycleHandler(service service.CycleService) *CycleHandler {
	return &CycleHandler{service: service}
}

// Get handles GET /v1/cycle
// @Summary Get cycle state
// @Description Cycle day and phase for a date (today by default), derived from the stored last period date. Falls back to mid-cycle when no reference date has been set.
// @Tags cycle
// @Produce json
// @Param date query string false "Date to compute for (YYYY-MM-DD, defaults to today)" format(date) example(2025-03-15)
// @Success 200 {object} domain.CycleResponse "Cycle day and phase"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cycle [get]
func (h *CycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			problem.BadRequest("date must be in YYYY-MM-DD format").Write(w)
			return
		}
		date = parsed
	}

	response, err := h.service.Get(r.Context(), date)
	if err != nil {
		problem.InternalError("Failed to compute cycle state").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Update handles PUT /v1/cycle
// @Summary Set the cycle reference date
// @Description Store the last period date and return the resulting cycle state for today. A future date is accepted; the cycle day is normalized back into range.
// @Tags cycle
// @Accept json
// @Produce json
// @Param request body domain.UpdateCycleRequest true "Cycle reference date"
// @Success 200 {object} domain.CycleResponse "Updated cycle state"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cycle [put]
func (h *CycleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	lastPeriod, err := time.Parse(domain.DateFormat, req.LastPeriodDate)
	if err != nil {
		problem.BadRequest("last_period_date must be in YYYY-MM-DD format").Write(w)
		return
	}

	response, err := h.service.SetLastPeriodDate(r.Context(), lastPeriod)
	if err != nil {
		problem.InternalError("Failed to update cycle reference date").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
