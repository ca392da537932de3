// Package filter projects the model's reference lists down to the rows
// that apply at a given size category. An item applies when its weight
// for that category is non-zero; zero means "not applicable".
//
// Filtering preserves the model's canonical ordering and never
// deduplicates, so two runs over the same inputs produce identical,
// identically ordered output.
package filter

import (
	"github.com/samber/lo"

	"github.com/sensmetry/detect/internal/model"
)

// CriterionRow is the projection of a criterion at one size category.
type CriterionRow struct {
	ID       string  `json:"id"`
	Value    float64 `json:"value"`
	Criteria string  `json:"criteria"`
	Context  string  `json:"context"`
}

// RequirementRow is the projection of a requirement at one size category.
type RequirementRow struct {
	ID          string  `json:"id"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// Criteria returns the applicable criteria rows for the given category.
func Criteria(category model.Category, items []model.Criterion) []CriterionRow {
	return lo.FilterMap(items, func(c model.Criterion, _ int) (CriterionRow, bool) {
		w := c.Weights[category]
		return CriterionRow{
			ID:       c.ID,
			Value:    w,
			Criteria: c.Criteria,
			Context:  c.Context,
		}, w != 0
	})
}

// Requirements returns the applicable requirement rows for the given category.
func Requirements(category model.Category, items []model.Requirement) []RequirementRow {
	return lo.FilterMap(items, func(r model.Requirement, _ int) (RequirementRow, bool) {
		w := r.Weights[category]
		return RequirementRow{
			ID:          r.ID,
			Value:       w,
			Description: r.Description,
		}, w != 0
	})
}
