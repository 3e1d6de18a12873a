package main

import (
	"github.com/spf13/cobra"

	"github.com/riskibarqy/hoopscout/internal/app"
)

func newServeCmd(state *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, report pages and overlays",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), state.cfg, state.logger)
		},
	}
}
