package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/hoopscout/internal/infrastructure/repository/memory"
)

func newAnnotationsCmd(state *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotations",
		Short: "Work with annotation export files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "validate FILE",
		Short: "Check that an export file would import cleanly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			result := memory.NewAnnotationRepository(state.logger).ImportAll(cmd.Context(), data)
			if !result.OK {
				return fmt.Errorf("%s: %s", args[0], result.Message)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], result.Message)
			return nil
		},
	})
	return cmd
}
