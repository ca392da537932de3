package model

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sensmetry/detect/internal/validation"
)

// Load reads, validates, and canonicalizes a rule model document.
// Any failure is reported as a *ReferenceDataError naming path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReferenceDataError{Source: path, Detail: "reading model", Err: err}
	}

	if errs := validation.ValidateModelBytes(data); len(errs) > 0 {
		return nil, &ReferenceDataError{
			Source: path,
			Detail: "schema validation failed:\n  " + strings.Join(errs, "\n  "),
		}
	}

	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ReferenceDataError{Source: path, Detail: "parsing model", Err: err}
	}

	if err := m.Validate(); err != nil {
		return nil, &ReferenceDataError{Source: path, Detail: err.Error()}
	}

	m.canonicalize()
	return &m, nil
}

// Validate checks the semantic constraints the JSON schema cannot express:
// unique identifiers, weights keyed by declared categories, and a weight
// entry for every declared category on every reference item.
func (m *Model) Validate() error {
	if len(m.Categories) == 0 {
		return fmt.Errorf("model declares no categories")
	}
	seenCat := make(map[Category]bool, len(m.Categories))
	for _, c := range m.Categories {
		if seenCat[c] {
			return fmt.Errorf("category %q declared twice", c)
		}
		seenCat[c] = true
	}

	if len(m.Questions) == 0 {
		return fmt.Errorf("model declares no questions")
	}
	seenQ := make(map[string]bool, len(m.Questions))
	for _, q := range m.Questions {
		if seenQ[q.ID] {
			return fmt.Errorf("question %q declared twice", q.ID)
		}
		seenQ[q.ID] = true
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q has no options", q.ID)
		}
		seenOpt := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seenOpt[o.Key] {
				return fmt.Errorf("question %q: option %q declared twice", q.ID, o.Key)
			}
			seenOpt[o.Key] = true
		}
	}

	if m.Rule.Type == "" {
		return fmt.Errorf("model declares no sizing rule")
	}

	for _, c := range m.Criteria {
		if err := m.validateWeights(fmt.Sprintf("criterion %q", c.ID), c.Weights); err != nil {
			return err
		}
	}
	for _, r := range m.Requirements {
		if err := m.validateWeights(fmt.Sprintf("requirement %q", r.ID), r.Weights); err != nil {
			return err
		}
	}
	return nil
}

// validateWeights rejects weights for undeclared categories and missing
// entries for declared ones. A partially weighted item is an authoring
// error, not an implicit zero.
func (m *Model) validateWeights(what string, weights map[Category]float64) error {
	for c := range weights {
		if !m.HasCategory(c) {
			return fmt.Errorf("%s: weight for undeclared category %q", what, c)
		}
	}
	for _, c := range m.Categories {
		if _, ok := weights[c]; !ok {
			return fmt.Errorf("%s: missing weight for category %q", what, c)
		}
	}
	return nil
}

// canonicalize sorts both reference lists into natural ID order
// (R1, R1.1, R2, R10). Every downstream stage preserves this order, so
// two runs over the same model always produce identically ordered output.
func (m *Model) canonicalize() {
	sort.SliceStable(m.Criteria, func(i, j int) bool {
		return naturalLess(m.Criteria[i].ID, m.Criteria[j].ID)
	})
	sort.SliceStable(m.Requirements, func(i, j int) bool {
		return naturalLess(m.Requirements[i].ID, m.Requirements[j].ID)
	})
}
