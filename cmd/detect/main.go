package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sensmetry/detect/internal/sizing"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0 // Evaluation completed
	ExitInvalidInput = 1 // Incomplete or invalid answers, or an invalid model in check
	ExitError        = 2 // Configuration or runtime error
)

// InvalidModelError indicates that a model check ran successfully but the
// model failed validation.
type InvalidModelError struct {
	Message string
}

func (e *InvalidModelError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		// Check error type to determine exit code
		var incomplete *sizing.IncompleteInputError
		var invalid *sizing.InvalidValueError
		var invalidModel *InvalidModelError
		if errors.As(err, &incomplete) || errors.As(err, &invalid) || errors.As(err, &invalidModel) {
			os.Exit(ExitInvalidInput)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
