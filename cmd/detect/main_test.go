package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sensmetry/detect/internal/sizing"
)

func TestInvalidModelError(t *testing.T) {
	err := &InvalidModelError{Message: "rule references undeclared category"}
	assert.Equal(t, "rule references undeclared category", err.Error())
}

func TestErrorTypeDetection(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		invalidInput bool
	}{
		{
			name:         "incomplete input",
			err:          &sizing.IncompleteInputError{Question: "team_size"},
			invalidInput: true,
		},
		{
			name:         "invalid value",
			err:          &sizing.InvalidValueError{Question: "team_size", Value: "huge"},
			invalidInput: true,
		},
		{
			name:         "invalid model",
			err:          &InvalidModelError{Message: "bad model"},
			invalidInput: true,
		},
		{
			name:         "wrapped invalid value",
			err:          fmt.Errorf("evaluating: %w", &sizing.InvalidValueError{Question: "q", Value: "v"}),
			invalidInput: true,
		},
		{
			name:         "runtime error",
			err:          errors.New("cannot write output"),
			invalidInput: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var incomplete *sizing.IncompleteInputError
			var invalid *sizing.InvalidValueError
			var invalidModel *InvalidModelError
			got := errors.As(tt.err, &incomplete) || errors.As(tt.err, &invalid) || errors.As(tt.err, &invalidModel)
			assert.Equal(t, tt.invalidInput, got)
		})
	}
}
