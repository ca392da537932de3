package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "DETECT - questionnaire-driven DE ecosystem sizing",
		Long: `DETECT sizes a digital engineering ecosystem from a fixed questionnaire.

It evaluates a declarative rule model over your answers, computes a size
category (small/medium/large), and writes the criteria and requirements
that apply at that size as CSV files.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if *debugLogging {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
	}

	// Add subcommands
	cmd.AddCommand(newEvaluateCommand())
	cmd.AddCommand(newWizardCommand())
	cmd.AddCommand(newQuestionsCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
