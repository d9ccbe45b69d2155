package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/llm"
	"github.com/neuro-os/neuro-index/internal/service"
	"github.com/neuro-os/neuro-index/pkg/problem"
)

// InsightsHandler handles LLM-backed insights endpoints.
type InsightsHandler struct {
	service service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Get handles GET /v1/insights
// @Summary Get LLM-powered productivity insights
// @Description Generate coaching insights from 30-day and 7-day score windows using LLM analysis. Requires an OpenAI API key to be configured.
// @Tags insights
// @Produce json
// @Success 200 {object} domain.InsightsResponse "Insights with supporting metrics"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service not configured"
// @Router /insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Generate(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
