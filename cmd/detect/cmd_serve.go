package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sensmetry/detect/internal/projectconfig"
	"github.com/sensmetry/detect/internal/webapi"
	"github.com/sensmetry/detect/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var (
		modelPath string
		port      int
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the questionnaire web UI",
		Long: `Serve the questionnaire web UI on localhost.

The landing page documents the tool, /tool hosts the form, and the JSON
API under /api drives it. The loaded rule model is shared read-only
between sessions; every evaluation gets its own run id for downloads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("model") {
				cfg.Model = modelPath
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			svc, closeLog, err := newService(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			server, err := webserver.New(webserver.Config{
				Port:      cfg.Server.Port,
				NoBrowser: noBrowser,
				Logger:    slog.Default(),
			}, svc, webapi.NewRunStore())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Rule model file (default from .detect.yaml)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from .detect.yaml)")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open the browser automatically")

	return cmd
}
