// Package webapi exposes the evaluation operation over JSON: the question
// catalogue for building the form, evaluation of a posted answer set, and
// CSV downloads of stored runs.
package webapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sensmetry/detect/internal/evaluate"
	"github.com/sensmetry/detect/internal/export"
	"github.com/sensmetry/detect/internal/model"
	"github.com/sensmetry/detect/internal/sizing"
)

// Version is set at build time or defaults to dev.
var Version = "dev"

// Evaluator is the evaluation seam the handlers depend on. The evaluate
// service satisfies it; tests substitute a mock.
type Evaluator interface {
	Evaluate(answers sizing.AnswerSet) (*evaluate.Result, error)
	Questions() []model.Question
}

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	evaluator Evaluator
	store     *RunStore
}

// NewHandlers creates Handlers around the given evaluator and store.
func NewHandlers(evaluator Evaluator, store *RunStore) *Handlers {
	return &Handlers{evaluator: evaluator, store: store}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}

// HandleQuestions returns the question catalogue in declaration order.
func (h *Handlers) HandleQuestions(w http.ResponseWriter, _ *http.Request) {
	questions := h.evaluator.Questions()
	dtos := make([]QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dto := QuestionDTO{
			ID:          q.ID,
			Question:    q.Question,
			Description: q.Description,
		}
		for _, o := range q.Options {
			label := o.Label
			if label == "" {
				label = o.Key
			}
			dto.Options = append(dto.Options, OptionDTO{Key: o.Key, Label: label})
		}
		dtos = append(dtos, dto)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HandleEvaluate evaluates a posted answer set and stores the result for
// later CSV download. Input validation errors come back as 400 with the
// offending question named.
func (h *Handlers) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	res, err := h.evaluator.Evaluate(sizing.AnswerSet(req.Answers))
	if err != nil {
		var incomplete *sizing.IncompleteInputError
		var invalid *sizing.InvalidValueError
		switch {
		case errors.As(err, &incomplete):
			writeInputError(w, err.Error(), incomplete.Question)
		case errors.As(err, &invalid):
			writeInputError(w, err.Error(), invalid.Question)
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	id := h.store.Put(res)
	writeJSON(w, http.StatusOK, EvaluateResponse{
		RunID:        id,
		Category:     string(res.Category),
		Score:        res.Score,
		Criteria:     res.Criteria,
		Requirements: res.Requirements,
	})
}

// HandleCriteriaCSV streams the criteria CSV of a stored run.
func (h *Handlers) HandleCriteriaCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	writeCSVHeaders(w, export.CriteriaFileName)
	export.WriteCriteria(w, res.Criteria) //nolint:errcheck
}

// HandleRequirementsCSV streams the requirements CSV of a stored run.
func (h *Handlers) HandleRequirementsCSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.lookupRun(w, r)
	if !ok {
		return
	}
	writeCSVHeaders(w, export.RequirementsFileName)
	export.WriteRequirements(w, res.Requirements) //nolint:errcheck
}

func (h *Handlers) lookupRun(w http.ResponseWriter, r *http.Request) (*evaluate.Result, bool) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "run id is required")
		return nil, false
	}
	res, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, ErrRunNotFound) {
			writeError(w, http.StatusNotFound, "run not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	return res, true
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, evaluator Evaluator, store *RunStore) {
	h := NewHandlers(evaluator, store)
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/questions", h.HandleQuestions)
	mux.HandleFunc("POST /api/evaluate", h.HandleEvaluate)
	mux.HandleFunc("GET /api/runs/{id}/criteria.csv", h.HandleCriteriaCSV)
	mux.HandleFunc("GET /api/runs/{id}/requirements.csv", h.HandleRequirementsCSV)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}

func writeInputError(w http.ResponseWriter, msg, question string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:    msg,
		Code:     http.StatusBadRequest,
		Question: question,
	})
}
