package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalLess_Ordering(t *testing.T) {
	ids := []string{"R10", "R2", "R1.1", "R1", "R1.10", "R1.2", "C3", "C1"}
	sort.Slice(ids, func(i, j int) bool { return naturalLess(ids[i], ids[j]) })

	assert.Equal(t, []string{"C1", "C3", "R1", "R1.1", "R1.2", "R1.10", "R2", "R10"}, ids)
}

func TestNaturalLess_Pairs(t *testing.T) {
	tests := []struct {
		a, b string
		less bool
	}{
		{"R1", "R2", true},
		{"R2", "R10", true},
		{"R10", "R2", false},
		{"R1", "R1.1", true},
		{"R1.2", "R1.10", true},
		{"A1", "B1", true},
		{"R1", "R1", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.less, naturalLess(tt.a, tt.b))
		})
	}
}
