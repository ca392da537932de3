package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sensmetry/detect/internal/evaluate"
	"github.com/sensmetry/detect/internal/model"
	"github.com/sensmetry/detect/internal/projectconfig"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [model]",
		Short: "Validate a rule model file",
		Long: `Validate a rule model file against the schema and the semantic rules
(unique ids, total sizing rule, complete weight maps).

Exits 1 when the model is invalid, 2 on runtime errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modelPath := ""
			if len(args) == 1 {
				modelPath = args[0]
			} else {
				cfg, err := projectconfig.Load(".")
				if err != nil {
					return err
				}
				modelPath = cfg.Model
			}

			m, err := model.Load(modelPath)
			if err != nil {
				return &InvalidModelError{Message: err.Error()}
			}

			// The rule itself is only constructed by the calculator, so
			// exercise that too: an undecodable or non-total rule is an
			// invalid model.
			if _, err := evaluate.New(m); err != nil {
				return &InvalidModelError{Message: err.Error()}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: OK\n", modelPath)
			rows := [][]string{
				{"name", m.Name},
				{"version", fmt.Sprintf("%d", m.Version)},
				{"rule", m.Rule.Type},
				{"categories", fmt.Sprintf("%d", len(m.Categories))},
				{"questions", fmt.Sprintf("%d", len(m.Questions))},
				{"criteria", fmt.Sprintf("%d", len(m.Criteria))},
				{"requirements", fmt.Sprintf("%d", len(m.Requirements))},
			}
			printTable(out, []string{"FIELD", "VALUE"}, rows)
			return nil
		},
	}

	return cmd
}
