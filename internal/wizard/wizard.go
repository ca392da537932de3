// Package wizard collects an answer set interactively from the question
// catalogue. On a terminal it runs a huh form with one select per
// question; with piped input it falls back to plain numbered prompts,
// re-asking until each answer is valid, so scripts and tests can drive
// it line by line.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/sensmetry/detect/internal/model"
	"github.com/sensmetry/detect/internal/sizing"
)

// Run collects one answer per question and returns the answer set.
func Run(in io.Reader, out io.Writer, questions []model.Question) (sizing.AnswerSet, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return runForm(in, out, questions)
	}
	return runPrompts(in, out, questions)
}

// runForm runs the interactive huh form.
func runForm(in io.Reader, out io.Writer, questions []model.Question) (sizing.AnswerSet, error) {
	selected := make([]string, len(questions))

	var fields []huh.Field
	for i, q := range questions {
		options := make([]huh.Option[string], 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, huh.NewOption(optionLabel(o), o.Key))
		}
		fields = append(fields,
			huh.NewSelect[string]().
				Title(q.Question).
				Description(q.Description).
				Options(options...).
				Value(&selected[i]))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithInput(in).
		WithOutput(out)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("questionnaire failed: %w", err)
	}

	answers := make(sizing.AnswerSet, len(questions))
	for i, q := range questions {
		answers[q.ID] = selected[i]
	}
	return answers, nil
}

// runPrompts reads one answer per line: either the 1-based option number
// or the option key. An invalid line is reported and the question asked
// again; only end of input aborts the run.
func runPrompts(in io.Reader, out io.Writer, questions []model.Question) (sizing.AnswerSet, error) {
	scanner := bufio.NewScanner(in)
	answers := make(sizing.AnswerSet, len(questions))

	for _, q := range questions {
		fmt.Fprintf(out, "%s\n", q.Question)
		if q.Description != "" {
			fmt.Fprintf(out, "  %s\n", q.Description)
		}
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, optionLabel(o))
		}

		for {
			fmt.Fprintf(out, "> ")

			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return nil, fmt.Errorf("reading answer for %q: %w", q.ID, err)
				}
				return nil, fmt.Errorf("unexpected end of input at question %q", q.ID)
			}

			key, err := resolveAnswer(q, strings.TrimSpace(scanner.Text()))
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			answers[q.ID] = key
			break
		}
	}
	return answers, nil
}

// resolveAnswer maps a typed line to an option key.
func resolveAnswer(q model.Question, line string) (string, error) {
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(q.Options) {
			return "", fmt.Errorf("question %q: choose a number between 1 and %d", q.ID, len(q.Options))
		}
		return q.Options[n-1].Key, nil
	}
	if _, ok := q.Option(line); ok {
		return line, nil
	}
	return "", fmt.Errorf("question %q: %q is not a valid choice", q.ID, line)
}

func optionLabel(o model.Option) string {
	if o.Label != "" {
		return o.Label
	}
	return o.Key
}
