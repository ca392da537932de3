// Package sizing maps a complete answer set to a size category by
// evaluating the model's sizing rule. The calculator is a pure function
// of its input: identical answers always yield the identical category.
package sizing

import (
	"github.com/sensmetry/detect/internal/model"
)

// AnswerSet maps question ids to the selected option key. One answer set
// is built per evaluation run.
type AnswerSet map[string]string

// Answer is one validated answer with its resolved option score.
type Answer struct {
	Question string
	Key      string
	Score    int
}

// Calculator evaluates the sizing rule over answer sets.
type Calculator struct {
	model *model.Model
	rule  rule
}

// NewCalculator builds a calculator for the model's declared rule.
// It fails if the rule type is unknown, its params do not decode, or the
// rule is not total over the declared categories.
func NewCalculator(m *model.Model) (*Calculator, error) {
	r, err := newRule(m)
	if err != nil {
		return nil, err
	}
	return &Calculator{model: m, rule: r}, nil
}

// Size validates answers against the question catalogue and applies the
// sizing rule. The returned score is the weighted sum that fed the rule,
// kept for display.
//
// Validation failures are typed: *IncompleteInputError when a declared
// question is unanswered (first missing question in catalogue order) and
// *InvalidValueError when an answer names an undeclared option.
func (c *Calculator) Size(answers AnswerSet) (model.Category, int, error) {
	resolved, err := c.Resolve(answers)
	if err != nil {
		return "", 0, err
	}

	category, err := c.rule.evaluate(resolved)
	if err != nil {
		return "", 0, err
	}

	score := 0
	for _, a := range resolved {
		score += a.Score
	}
	return category, score, nil
}

// Resolve validates an answer set and resolves each answer to its option,
// in catalogue order.
func (c *Calculator) Resolve(answers AnswerSet) ([]Answer, error) {
	resolved := make([]Answer, 0, len(c.model.Questions))
	for _, q := range c.model.Questions {
		key, ok := answers[q.ID]
		if !ok || key == "" {
			return nil, &IncompleteInputError{Question: q.ID}
		}
		opt, ok := q.Option(key)
		if !ok {
			return nil, &InvalidValueError{Question: q.ID, Value: key}
		}
		resolved = append(resolved, Answer{Question: q.ID, Key: key, Score: opt.Score})
	}

	// Answers for undeclared questions are rejected too: they indicate a
	// stale answers file rather than a harmless extra.
	for id := range answers {
		if _, ok := c.model.Question(id); !ok {
			return nil, &InvalidValueError{Question: id, Value: answers[id]}
		}
	}
	return resolved, nil
}
