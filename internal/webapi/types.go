package webapi

import (
	"github.com/sensmetry/detect/internal/filter"
)

// HealthResponse is the payload for GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is the payload for any error status.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
	// Question names the offending question for input validation errors.
	Question string `json:"question,omitempty"`
}

// OptionDTO is one selectable answer in the question catalogue payload.
type OptionDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// QuestionDTO is one question in the catalogue payload. Scores stay
// server-side; the form only needs keys and labels.
type QuestionDTO struct {
	ID          string      `json:"id"`
	Question    string      `json:"question"`
	Description string      `json:"description,omitempty"`
	Options     []OptionDTO `json:"options"`
}

// EvaluateRequest is the payload for POST /api/evaluate.
type EvaluateRequest struct {
	Answers map[string]string `json:"answers"`
}

// EvaluateResponse is the payload for a successful evaluation.
type EvaluateResponse struct {
	RunID        string                  `json:"run_id"`
	Category     string                  `json:"category"`
	Score        int                     `json:"score"`
	Criteria     []filter.CriterionRow   `json:"criteria"`
	Requirements []filter.RequirementRow `json:"requirements"`
}
