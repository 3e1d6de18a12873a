package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/hoopscout/internal/config"
	"github.com/riskibarqy/hoopscout/internal/platform/logging"
)

// cli carries what every subcommand needs once the root has loaded config.
type cli struct {
	cfg    config.Config
	logger *logging.Logger
}

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "scout: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	state := &cli{}
	root := &cobra.Command{
		Use:           "scout",
		Short:         "Scouting reports, standings and annotation tools for the league",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			state.cfg = cfg
			state.logger = logging.NewJSONWriter(cfg.LogLevel, cmd.ErrOrStderr()).With("service", cfg.ServiceName)
			logging.SetDefault(state.logger)
			return nil
		},
	}

	root.AddCommand(newServeCmd(state))
	root.AddCommand(newReportCmd(state))
	root.AddCommand(newStandingsCmd(state))
	root.AddCommand(newAnnotationsCmd(state))
	return root
}
