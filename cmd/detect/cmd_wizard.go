package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sensmetry/detect/internal/projectconfig"
	"github.com/sensmetry/detect/internal/wizard"
)

func newWizardCommand() *cobra.Command {
	var (
		modelPath  string
		outputDir  string
		compress   bool
		sessionLog bool
	)

	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Answer the questionnaire interactively, then evaluate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg, modelPath, outputDir, compress, sessionLog)

			svc, closeLog, err := newService(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			answers, err := wizard.Run(os.Stdin, cmd.OutOrStdout(), svc.Questions())
			if err != nil {
				return err
			}

			return runEvaluation(cmd, svc, cfg, answers)
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Rule model file (default from .detect.yaml)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for the CSV files")
	cmd.Flags().BoolVar(&compress, "compress", false, "Gzip the CSV outputs")
	cmd.Flags().BoolVar(&sessionLog, "session-log", false, "Append this run to the session log")

	return cmd
}
