// Package model defines the declarative rule model: the question catalogue,
// the sizing rule, and the two weighted reference lists (criteria and
// requirements). A model is loaded once per run and never mutated afterwards,
// so a single instance is safe to share across sessions.
package model

import "fmt"

// Category is one size category declared by the model (e.g. small, medium,
// large). The set is closed per model but not hard-coded here.
type Category string

// Option is one allowed answer for a question, with the numeric score the
// sizing rule may use.
type Option struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label,omitempty"`
	Score int    `yaml:"score"`
}

// Question is one entry of the question catalogue.
type Question struct {
	ID          string   `yaml:"id"`
	Question    string   `yaml:"question"`
	Description string   `yaml:"description,omitempty"`
	Options     []Option `yaml:"options"`
}

// Option returns the option with the given key, if declared.
func (q Question) Option(key string) (Option, bool) {
	for _, o := range q.Options {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

// Rule names the sizing rule kind and carries its untyped parameters.
// The sizing package decodes Params into the concrete rule type.
type Rule struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params"`
}

// Criterion is a reference item of the criteria list.
type Criterion struct {
	ID       string               `yaml:"id"`
	Criteria string               `yaml:"criteria"`
	Context  string               `yaml:"context,omitempty"`
	Weights  map[Category]float64 `yaml:"weights"`
}

// Requirement is a reference item of the requirements list.
type Requirement struct {
	ID          string               `yaml:"id"`
	Description string               `yaml:"description"`
	Weights     map[Category]float64 `yaml:"weights"`
}

// Model is a complete, validated rule model document.
type Model struct {
	Version      int           `yaml:"version"`
	Name         string        `yaml:"name"`
	Categories   []Category    `yaml:"categories"`
	Questions    []Question    `yaml:"questions"`
	Rule         Rule          `yaml:"rule"`
	Criteria     []Criterion   `yaml:"criteria"`
	Requirements []Requirement `yaml:"requirements"`
}

// HasCategory reports whether c is declared by the model.
func (m *Model) HasCategory(c Category) bool {
	for _, declared := range m.Categories {
		if declared == c {
			return true
		}
	}
	return false
}

// Question returns the question with the given id, if declared.
func (m *Model) Question(id string) (Question, bool) {
	for _, q := range m.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ReferenceDataError indicates a malformed or unreachable rule model.
// It always names the model source so the caller can report which
// document failed, not just that one did.
type ReferenceDataError struct {
	Source string // file path or description of the model source
	Detail string
	Err    error
}

func (e *ReferenceDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reference data %s: %s: %v", e.Source, e.Detail, e.Err)
	}
	return fmt.Sprintf("reference data %s: %s", e.Source, e.Detail)
}

func (e *ReferenceDataError) Unwrap() error { return e.Err }
