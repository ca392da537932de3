package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/sensmetry/detect/internal/evaluate"
	"github.com/sensmetry/detect/internal/model"
	"github.com/sensmetry/detect/internal/projectconfig"
	"github.com/sensmetry/detect/internal/session"
	"github.com/sensmetry/detect/internal/sizing"
	"github.com/sensmetry/detect/internal/wizard"
)

func newEvaluateCommand() *cobra.Command {
	var (
		modelPath   string
		answersPath string
		setFlags    []string
		outputDir   string
		compress    bool
		sessionLog  bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute the system size and write the filtered CSV outputs",
		Long: `Compute the system size from an answer set and write criteria.csv and
requirements.csv filtered to that size.

Answers come from --answers (a YAML map of question id to option key),
from repeated --set flags (which win over the file), or, when neither is
given on a terminal, from the interactive questionnaire.`,
		Args: cobra.NoArgs,
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

			answers, err := collectAnswers(cmd, svc, answersPath, setFlags)
			if err != nil {
				return err
			}

			return runEvaluation(cmd, svc, cfg, answers)
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Rule model file (default from .detect.yaml)")
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "YAML file mapping question ids to option keys")
	cmd.Flags().StringArrayVar(&setFlags, "set", nil, "Answer one question directly (question=key, repeatable)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for the CSV files")
	cmd.Flags().BoolVar(&compress, "compress", false, "Gzip the CSV outputs")
	cmd.Flags().BoolVar(&sessionLog, "session-log", false, "Append this run to the session log")

	return cmd
}

// applyFlagOverrides overlays explicitly set flags onto the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *projectconfig.Config, modelPath, outputDir string, compress, sessionLog bool) {
	if cmd.Flags().Changed("model") {
		cfg.Model = modelPath
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Dir = outputDir
	}
	if cmd.Flags().Changed("compress") {
		cfg.Output.Compress = &compress
	}
	if cmd.Flags().Changed("session-log") {
		cfg.Session.Log = &sessionLog
	}
}

// newService loads the rule model and builds the evaluation service,
// with a session logger when enabled. The returned close function is
// safe to call unconditionally.
func newService(cfg *projectconfig.Config) (*evaluate.Service, func(), error) {
	m, err := model.Load(cfg.Model)
	if err != nil {
		return nil, nil, err
	}

	var opts []evaluate.Option
	closeLog := func() {}
	if cfg.Session.Log != nil && *cfg.Session.Log {
		logger, err := session.NewJSONLogger(session.DefaultLogPath(cfg.Session.Dir))
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, evaluate.WithSessionLog(logger))
		closeLog = func() { _ = logger.Close() }
	}

	svc, err := evaluate.New(m, opts...)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return svc, closeLog, nil
}

// collectAnswers resolves the answer set from the answers file and --set
// flags, falling back to the interactive questionnaire when nothing was
// provided and stdin is a terminal.
func collectAnswers(cmd *cobra.Command, svc *evaluate.Service, answersPath string, setFlags []string) (sizing.AnswerSet, error) {
	answers := make(sizing.AnswerSet)

	if answersPath != "" {
		data, err := os.ReadFile(answersPath)
		if err != nil {
			return nil, fmt.Errorf("reading answers file: %w", err)
		}
		if err := yaml.Unmarshal(data, &answers); err != nil {
			return nil, fmt.Errorf("parsing answers file %s: %w", answersPath, err)
		}
	}

	for _, pair := range setFlags {
		q, key, ok := strings.Cut(pair, "=")
		if !ok || q == "" || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected question=key", pair)
		}
		answers[q] = key
	}

	if len(answers) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		return wizard.Run(os.Stdin, cmd.OutOrStdout(), svc.Questions())
	}
	return answers, nil
}

// runEvaluation evaluates answers, prints the result, and writes the CSV
// outputs. Shared by the evaluate and wizard commands.
func runEvaluation(cmd *cobra.Command, svc *evaluate.Service, cfg *projectconfig.Config, answers sizing.AnswerSet) error {
	res, err := svc.Evaluate(answers)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printResult(out, res)

	compress := cfg.Output.Compress != nil && *cfg.Output.Compress
	criteriaPath, requirementsPath, err := svc.WriteOutputs(res, cfg.Output.Dir, compress)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nWrote %s\n", criteriaPath)
	fmt.Fprintf(out, "Wrote %s\n", requirementsPath)
	return nil
}
