package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/hoopscout/internal/app"
	"github.com/riskibarqy/hoopscout/internal/domain/team"
)

func newStandingsCmd(state *cli) *cobra.Command {
	var (
		region string
		season int64
	)

	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print a regional league table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			division, err := team.ParseDivision(region)
			if err != nil {
				return err
			}

			services := app.NewServices(state.cfg, state.logger)
			table, err := services.Standings.Table(cmd.Context(), season, division)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Platz\tTeam\tSp\tS\tN\tDiff")
			for _, row := range table.Rows {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\n", row.Position, row.TeamName, row.Played, row.Wins, row.Losses, row.DiffDisplay())
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&region, "region", "North", "North or South")
	cmd.Flags().Int64Var(&season, "season", 0, "season id (defaults to SCOUT_SEASON_ID)")
	return cmd
}
