package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sensmetry/detect/internal/model"
	"github.com/sensmetry/detect/internal/projectconfig"
)

func newQuestionsCommand() *cobra.Command {
	var modelPath string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the question catalogue with answer options and scores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("model") {
				cfg.Model = modelPath
			}

			m, err := model.Load(cfg.Model)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, q := range m.Questions {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s: %s\n", q.ID, q.Question)
				if q.Description != "" {
					fmt.Fprintf(out, "  %s\n", q.Description)
				}
				rows := make([][]string, 0, len(q.Options))
				for _, o := range q.Options {
					label := o.Label
					if label == "" {
						label = o.Key
					}
					rows = append(rows, []string{o.Key, label, strconv.Itoa(o.Score)})
				}
				printTable(out, []string{"KEY", "LABEL", "SCORE"}, rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Rule model file (default from .detect.yaml)")

	return cmd
}
