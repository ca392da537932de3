package sizing

import "fmt"

// IncompleteInputError indicates a required question with no answer.
// The question id is carried so callers can tell the user which field
// to fill in, not just that something is missing.
type IncompleteInputError struct {
	Question string
}

func (e *IncompleteInputError) Error() string {
	return fmt.Sprintf("question %q has no answer", e.Question)
}

// InvalidValueError indicates an answer outside its question's declared
// option domain.
type InvalidValueError struct {
	Question string
	Value    string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("question %q: %q is not one of the declared options", e.Question, e.Value)
}
