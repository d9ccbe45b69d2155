package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/neuro-os/neuro-index/internal/api/validation"
	"github.com/neuro-os/neuro-index/internal/domain"
	"github.com/neuro-os/neuro-index/internal/scoring"
	"github.com/neuro-os/neuro-index/internal/service"
	"github.com/neuro-os/neuro-index/pkg/problem"
)

type EntryHandler struct {
	service service.EntryService
}

func NewEntryHandler(service service.EntryService) *EntryHandler {
	return &EntryHandler{service: service}
}

// Create handles POST /v1/entries
// @Summary Record a day's metrics
// @Description Score a day's raw metrics with the configured profile and store the result. Posting the same date again replaces the previous entry: returns 200 on replacement, 201 on a new entry.
// @Tags entries
// @Accept json
// @Produce json
// @Param request body domain.CreateEntryRequest true "Raw daily metrics"
// @Success 201 {object} domain.EntryResponse "New entry created"
// @Success 200 {object} domain.EntryResponse "Existing entry for the date replaced"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Metric out of domain or required metric missing"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries [post]
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeScoringError(w, err, "Failed to create entry")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK) // replaced an existing date
	}
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/entries
// @Summary List entries
// @Description Fetch paginated entries, newest first. Filter by date range.
// @Tags entries
// @Produce json
// @Param from query string false "Start of date range (YYYY-MM-DD)" format(date) example(2025-03-01)
// @Param to query string false "End of date range (YYYY-MM-DD)" format(date) example(2025-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.EntryListResponse "Entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries [get]
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseEntryFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid cursor").Write(w)
			return
		}
		problem.InternalError("Failed to list entries").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Latest handles GET /v1/entries/latest
// @Summary Get the most recent entry
// @Tags entries
// @Produce json
// @Success 200 {object} domain.EntryResponse "Most recent entry"
// @Failure 404 {object} problem.Problem "No entries recorded yet"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries/latest [get]
func (h *EntryHandler) Latest(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.Latest(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No entries recorded yet").Write(w)
			return
		}
		problem.InternalError("Failed to fetch latest entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// GetByDate handles GET /v1/entries/{date}
// @Summary Get the entry for a date
// @Tags entries
// @Produce json
// @Param date path string true "Entry date (YYYY-MM-DD)" format(date) example(2025-03-15)
// @Success 200 {object} domain.EntryResponse "Entry for the date"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 404 {object} problem.Problem "No entry for the date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /entries/{date} [get]
func (h *EntryHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.GetByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Date must be in YYYY-MM-DD format").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No entry for this date").Write(w)
			return
		}
		problem.InternalError("Failed to fetch entry").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// writeScoringError maps scoring engine failures to problem responses.
// Out-of-domain values and missing metrics are client errors, not server
// faults: the engine rejects rather than clamps.
func writeScoringError(w http.ResponseWriter, err error, fallback string) {
	var outOfDomain *scoring.OutOfDomainError
	if errors.As(err, &outOfDomain) {
		problem.ValidationError("Metric outside realistic bounds", []problem.FieldError{
			{
				Field:   outOfDomain.Metric,
				Message: outOfDomain.Error(),
			},
		}).Write(w)
		return
	}

	var missing *scoring.MissingMetricError
	if errors.As(err, &missing) {
		var fieldErrors []problem.FieldError
		for _, metric := range missing.Metrics {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   metric,
				Message: "is required by the active scoring profile",
			})
		}
		problem.ValidationError("Required metric missing", fieldErrors).Write(w)
		return
	}

	if errors.Is(err, domain.ErrInvalidInput) {
		problem.BadRequest("Invalid request values").Write(w)
		return
	}

	problem.InternalError(fallback).Write(w)
}

func parseEntryFilter(r *http.Request) (domain.EntryFilter, []problem.FieldError) {
	var filter domain.EntryFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
