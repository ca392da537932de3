package evaluate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensmetry/detect/internal/export"
	"github.com/sensmetry/detect/internal/model"
	"github.com/sensmetry/detect/internal/session"
	"github.com/sensmetry/detect/internal/sizing"
)

func testModel() *model.Model {
	return &model.Model{
		Version:    1,
		Name:       "service test model",
		Categories: []model.Category{"small", "medium", "large"},
		Questions: []model.Question{
			{
				ID:       "team_size",
				Question: "How big is the team?",
				Options: []model.Option{
					{Key: "small", Score: 1},
					{Key: "large", Score: 3},
				},
			},
			{
				ID:       "project_count",
				Question: "How many projects?",
				Options: []model.Option{
					{Key: "few", Score: 0},
					{Key: "many", Score: 2},
				},
			},
		},
		Rule: model.Rule{
			Type: sizing.TypeWeightedSum,
			Params: map[string]any{
				"thresholds": []any{
					map[string]any{"max": 2, "category": "small"},
					map[string]any{"max": 4, "category": "medium"},
					map[string]any{"category": "large"},
				},
			},
		},
		Criteria: []model.Criterion{
			{ID: "C1", Criteria: "always", Context: "ctx", Weights: map[model.Category]float64{"small": 1, "medium": 1, "large": 1}},
			{ID: "C2", Criteria: "large only", Weights: map[model.Category]float64{"small": 0, "medium": 0, "large": 5}},
		},
		Requirements: []model.Requirement{
			{ID: "R1", Description: "always", Weights: map[model.Category]float64{"small": 1, "medium": 1, "large": 1}},
			{ID: "R2", Description: "not for small", Weights: map[model.Category]float64{"small": 0, "medium": 2, "large": 2}},
		},
	}
}

type captureLogger struct {
	records []session.Record
	err     error
}

func (c *captureLogger) Log(rec session.Record) error {
	c.records = append(c.records, rec)
	return c.err
}

func (c *captureLogger) Close() error { return nil }

func TestNew_BadRuleIsReferenceDataError(t *testing.T) {
	m := testModel()
	m.Rule.Type = "unknown"

	_, err := New(m)

	var refErr *model.ReferenceDataError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "service test model", refErr.Source)
}

func TestService_Evaluate(t *testing.T) {
	svc, err := New(testModel())
	require.NoError(t, err)

	res, err := svc.Evaluate(sizing.AnswerSet{"team_size": "large", "project_count": "many"})
	require.NoError(t, err)

	assert.Equal(t, model.Category("large"), res.Category)
	assert.Equal(t, 5, res.Score)
	require.Len(t, res.Criteria, 2)
	assert.Equal(t, "C2", res.Criteria[1].ID)
	assert.Equal(t, float64(5), res.Criteria[1].Value)
	require.Len(t, res.Requirements, 2)
}

func TestService_Evaluate_SmallFiltersOut(t *testing.T) {
	svc, err := New(testModel())
	require.NoError(t, err)

	res, err := svc.Evaluate(sizing.AnswerSet{"team_size": "small", "project_count": "few"})
	require.NoError(t, err)

	assert.Equal(t, model.Category("small"), res.Category)
	require.Len(t, res.Criteria, 1)
	assert.Equal(t, "C1", res.Criteria[0].ID)
	require.Len(t, res.Requirements, 1)
	assert.Equal(t, "R1", res.Requirements[0].ID)
}

func TestService_Evaluate_InputErrorsPassThrough(t *testing.T) {
	svc, err := New(testModel())
	require.NoError(t, err)

	_, err = svc.Evaluate(sizing.AnswerSet{"team_size": "large"})

	var incomplete *sizing.IncompleteInputError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "project_count", incomplete.Question)
}

func TestService_Evaluate_RecordsSession(t *testing.T) {
	capture := &captureLogger{}
	svc, err := New(testModel(), WithSessionLog(capture))
	require.NoError(t, err)

	answers := sizing.AnswerSet{"team_size": "large", "project_count": "few"}
	_, err = svc.Evaluate(answers)
	require.NoError(t, err)

	require.Len(t, capture.records, 1)
	rec := capture.records[0]
	assert.Equal(t, "medium", rec.Category)
	assert.Equal(t, 3, rec.Score)
	assert.Equal(t, Fingerprint(answers), rec.Fingerprint)
	assert.False(t, rec.Timestamp.IsZero())
}

func TestService_Evaluate_SessionLogFailureIsNonFatal(t *testing.T) {
	capture := &captureLogger{err: errors.New("disk full")}
	svc, err := New(testModel(), WithSessionLog(capture))
	require.NoError(t, err)

	_, err = svc.Evaluate(sizing.AnswerSet{"team_size": "small", "project_count": "few"})
	assert.NoError(t, err)
}

func TestService_WriteOutputs(t *testing.T) {
	svc, err := New(testModel())
	require.NoError(t, err)

	res, err := svc.Evaluate(sizing.AnswerSet{"team_size": "large", "project_count": "many"})
	require.NoError(t, err)

	dir := t.TempDir()
	criteriaPath, requirementsPath, err := svc.WriteOutputs(res, dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, export.CriteriaFileName), criteriaPath)
	assert.Equal(t, filepath.Join(dir, export.RequirementsFileName), requirementsPath)

	data, err := os.ReadFile(criteriaPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "C2,5,large only")
}

func TestFingerprint(t *testing.T) {
	a := sizing.AnswerSet{"team_size": "large", "project_count": "many"}
	b := sizing.AnswerSet{"project_count": "many", "team_size": "large"}
	c := sizing.AnswerSet{"team_size": "small", "project_count": "many"}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
	assert.Len(t, Fingerprint(a), 64)
}
