// Package evaluate wires the calculator and the list filter into the
// single operation the CLI, the wizard, and the web API all consume:
// evaluate(answers) -> (criteria rows, requirement rows).
package evaluate

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sensmetry/detect/internal/export"
	"github.com/sensmetry/detect/internal/filter"
	"github.com/sensmetry/detect/internal/model"
	"github.com/sensmetry/detect/internal/session"
	"github.com/sensmetry/detect/internal/sizing"
)

// Result is the outcome of one evaluation run.
type Result struct {
	Category     model.Category          `json:"category"`
	Score        int                     `json:"score"`
	Criteria     []filter.CriterionRow   `json:"criteria"`
	Requirements []filter.RequirementRow `json:"requirements"`
}

// Service owns the immutable rule model and evaluates answer sets against
// it. A single Service is safe to share: the model and calculator are
// read-only after construction, and each call builds its own result.
type Service struct {
	model  *model.Model
	calc   *sizing.Calculator
	log    session.Logger
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSessionLog records every evaluation to the given session logger.
func WithSessionLog(l session.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithLogger sets the slog logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New builds a Service for the given model. A model whose rule cannot be
// constructed is reference-data error, reported as such.
func New(m *model.Model, opts ...Option) (*Service, error) {
	calc, err := sizing.NewCalculator(m)
	if err != nil {
		return nil, &model.ReferenceDataError{Source: m.Name, Detail: "building sizing rule", Err: err}
	}

	s := &Service{
		model:  m,
		calc:   calc,
		log:    session.NopLogger{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Model returns the service's rule model.
func (s *Service) Model() *model.Model { return s.model }

// Questions returns the question catalogue in declaration order.
func (s *Service) Questions() []model.Question { return s.model.Questions }

// Evaluate computes the size category for answers and filters both
// reference lists by it. Input validation errors from the calculator are
// returned unchanged so callers can name the offending question.
func (s *Service) Evaluate(answers sizing.AnswerSet) (*Result, error) {
	category, score, err := s.calc.Size(answers)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Category:     category,
		Score:        score,
		Criteria:     filter.Criteria(category, s.model.Criteria),
		Requirements: filter.Requirements(category, s.model.Requirements),
	}

	s.logger.Debug("evaluated answer set",
		"category", category,
		"score", score,
		"criteria", len(res.Criteria),
		"requirements", len(res.Requirements))

	if err := s.log.Log(session.Record{
		Timestamp:    time.Now().UTC(),
		Fingerprint:  Fingerprint(answers),
		Category:     string(category),
		Score:        score,
		Criteria:     len(res.Criteria),
		Requirements: len(res.Requirements),
	}); err != nil {
		// The session log is an audit convenience; a failed append must
		// not fail a correct evaluation.
		s.logger.Warn("session log append failed", "error", err)
	}

	return res, nil
}

// WriteOutputs writes criteria.csv and requirements.csv for res into dir,
// concurrently, and returns the written paths.
func (s *Service) WriteOutputs(res *Result, dir string, compress bool) (criteriaPath, requirementsPath string, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		criteriaPath, err = export.WriteCriteriaFile(dir, res.Criteria, compress)
		return err
	})
	g.Go(func() error {
		var err error
		requirementsPath, err = export.WriteRequirementsFile(dir, res.Requirements, compress)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return criteriaPath, requirementsPath, nil
}

// Fingerprint returns a stable sha256 hex digest of an answer set. Pairs
// are hashed in sorted order with null-byte delimiters so the digest does
// not depend on map iteration order.
func Fingerprint(answers sizing.AnswerSet) string {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	h := sha256.New()
	for _, id := range ids {
		fmt.Fprintf(h, "%s\x00%s\x00", id, answers[id])
	}
	return hex.EncodeToString(h.Sum(nil))
}
