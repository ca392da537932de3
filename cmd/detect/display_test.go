package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensmetry/detect/internal/evaluate"
	"github.com/sensmetry/detect/internal/filter"
)

func TestPrintResult(t *testing.T) {
	res := &evaluate.Result{
		Category: "medium",
		Score:    3,
		Criteria: []filter.CriterionRow{
			{ID: "C1", Value: 2.5, Criteria: "a criterion", Context: "ctx"},
		},
		Requirements: []filter.RequirementRow{
			{ID: "R1", Value: 1, Description: "a requirement"},
		},
	}

	var buf bytes.Buffer
	printResult(&buf, res)
	output := buf.String()

	assert.Contains(t, output, "System size: medium (score 3)")
	assert.Contains(t, output, "Criteria (1):")
	assert.Contains(t, output, "C1")
	assert.Contains(t, output, "2.5")
	assert.Contains(t, output, "Requirements (1):")
	assert.Contains(t, output, "a requirement")
}

func TestPrintResult_EmptyListsOmitTables(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, &evaluate.Result{Category: "small", Score: 1})

	output := buf.String()
	assert.NotContains(t, output, "Criteria")
	assert.NotContains(t, output, "Requirements")
}

func TestPrintTable_Alignment(t *testing.T) {
	var buf bytes.Buffer
	printTable(&buf, []string{"ID", "DESCRIPTION"}, [][]string{
		{"R1", "short"},
		{"R1.10", "longer text"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  ID     DESCRIPTION", lines[0])
	assert.Equal(t, "  R1     short", lines[1])
	assert.Equal(t, "  R1.10  longer text", lines[2])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "5", formatValue(5))
	assert.Equal(t, "2.5", formatValue(2.5))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcd", padRight("abcd", 3))
}
