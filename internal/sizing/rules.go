package sizing

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/sensmetry/detect/internal/model"
)

// Rule type identifiers accepted in a model's rule block.
const (
	TypeWeightedSum   = "weighted_sum"
	TypeDecisionTable = "decision_table"
)

// rule maps a resolved answer set to a category. Implementations must be
// total: every valid answer combination yields exactly one category.
type rule interface {
	evaluate(answers []Answer) (model.Category, error)
}

// newRule decodes the model's rule params into a concrete rule and checks
// its totality against the declared categories.
func newRule(m *model.Model) (rule, error) {
	switch m.Rule.Type {
	case TypeWeightedSum:
		var v *struct {
			Thresholds []struct {
				Max      *int   `mapstructure:"max"`
				Category string `mapstructure:"category"`
			} `mapstructure:"thresholds"`
		}
		if err := mapstructure.Decode(m.Rule.Params, &v); err != nil {
			return nil, fmt.Errorf("decoding %s params: %w", TypeWeightedSum, err)
		}
		if v == nil || len(v.Thresholds) == 0 {
			return nil, fmt.Errorf("%s rule declares no thresholds", TypeWeightedSum)
		}

		r := &weightedSumRule{}
		for i, t := range v.Thresholds {
			cat := model.Category(t.Category)
			if !m.HasCategory(cat) {
				return nil, fmt.Errorf("%s rule: threshold %d maps to undeclared category %q", TypeWeightedSum, i+1, t.Category)
			}
			r.thresholds = append(r.thresholds, threshold{max: t.Max, category: cat})
		}
		if err := r.checkTotal(); err != nil {
			return nil, err
		}
		return r, nil

	case TypeDecisionTable:
		var v *struct {
			Rows []struct {
				When     map[string]string `mapstructure:"when"`
				Category string            `mapstructure:"category"`
			} `mapstructure:"rows"`
		}
		if err := mapstructure.Decode(m.Rule.Params, &v); err != nil {
			return nil, fmt.Errorf("decoding %s params: %w", TypeDecisionTable, err)
		}
		if v == nil || len(v.Rows) == 0 {
			return nil, fmt.Errorf("%s rule declares no rows", TypeDecisionTable)
		}

		r := &decisionTableRule{}
		for i, row := range v.Rows {
			cat := model.Category(row.Category)
			if !m.HasCategory(cat) {
				return nil, fmt.Errorf("%s rule: row %d maps to undeclared category %q", TypeDecisionTable, i+1, row.Category)
			}
			for q, key := range row.When {
				question, ok := m.Question(q)
				if !ok {
					return nil, fmt.Errorf("%s rule: row %d conditions on undeclared question %q", TypeDecisionTable, i+1, q)
				}
				if _, ok := question.Option(key); !ok {
					return nil, fmt.Errorf("%s rule: row %d conditions on undeclared option %q of question %q", TypeDecisionTable, i+1, key, q)
				}
			}
			r.rows = append(r.rows, decisionRow{when: row.When, category: cat})
		}
		if err := r.checkTotal(); err != nil {
			return nil, err
		}
		return r, nil

	default:
		return nil, fmt.Errorf("%q is not a valid rule type", m.Rule.Type)
	}
}

// threshold is one entry of a weighted-sum threshold ladder. A nil max is
// the open-ended tail.
type threshold struct {
	max      *int
	category model.Category
}

// weightedSumRule sums the selected options' scores and maps the total
// through an ordered threshold ladder (score <= max picks the entry).
type weightedSumRule struct {
	thresholds []threshold
}

// checkTotal enforces a strictly increasing ladder with an open-ended
// final entry, which makes the mapping total over all scores.
func (r *weightedSumRule) checkTotal() error {
	for i, t := range r.thresholds {
		last := i == len(r.thresholds)-1
		if last {
			if t.max != nil {
				return fmt.Errorf("%s rule: final threshold must be open-ended (no max)", TypeWeightedSum)
			}
			continue
		}
		if t.max == nil {
			return fmt.Errorf("%s rule: only the final threshold may omit max", TypeWeightedSum)
		}
		if i > 0 && *r.thresholds[i-1].max >= *t.max {
			return fmt.Errorf("%s rule: thresholds must be strictly increasing", TypeWeightedSum)
		}
	}
	return nil
}

func (r *weightedSumRule) evaluate(answers []Answer) (model.Category, error) {
	score := 0
	for _, a := range answers {
		score += a.Score
	}
	for _, t := range r.thresholds {
		if t.max == nil || score <= *t.max {
			return t.category, nil
		}
	}
	// Unreachable after checkTotal, kept so evaluate never returns an
	// empty category.
	return "", fmt.Errorf("score %d matched no threshold", score)
}

// decisionRow is one row of a decision table: all when-conditions must
// match the selected option keys.
type decisionRow struct {
	when     map[string]string
	category model.Category
}

// decisionTableRule picks the first row whose conditions all match.
type decisionTableRule struct {
	rows []decisionRow
}

// checkTotal requires a final unconditional row so every answer
// combination matches at least one row.
func (r *decisionTableRule) checkTotal() error {
	if len(r.rows[len(r.rows)-1].when) != 0 {
		return fmt.Errorf("%s rule: final row must be unconditional", TypeDecisionTable)
	}
	return nil
}

func (r *decisionTableRule) evaluate(answers []Answer) (model.Category, error) {
	selected := make(map[string]string, len(answers))
	for _, a := range answers {
		selected[a.Question] = a.Key
	}

	for _, row := range r.rows {
		matched := true
		for q, key := range row.when {
			if selected[q] != key {
				matched = false
				break
			}
		}
		if matched {
			return row.category, nil
		}
	}
	return "", fmt.Errorf("no decision table row matched")
}
