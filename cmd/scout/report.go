package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/hoopscout/internal/app"
	"github.com/riskibarqy/hoopscout/internal/domain/scouting"
	"github.com/riskibarqy/hoopscout/internal/usecase"
)

func newReportCmd(state *cli) *cobra.Command {
	var (
		fixtures    []string
		outDir      string
		annotations string
		scout       string
		season      int64
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render scouting reports for one or more fixtures",
		Example: "  scout report --fixture 1101:1201@2026-03-07T19:30:00+01:00 --fixture 1102:1203 --out reports/\n" +
			"  scout report --fixture 1101:1201 --scout home --annotations notes.json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			requests := make([]usecase.ReportRequest, 0, len(fixtures))
			for _, raw := range fixtures {
				req, err := parseFixture(raw)
				if err != nil {
					return err
				}
				req.SeasonID = season
				req.Scout = scouting.ParseSide(strings.ToLower(scout))
				requests = append(requests, req)
			}
			if len(requests) == 0 {
				return fmt.Errorf("at least one --fixture is required")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			ctx := cmd.Context()
			services := app.NewServices(state.cfg, state.logger)
			file := annotations
			if file == "" {
				file = state.cfg.AnnotationsFile
			}
			if err := services.LoadAnnotations(ctx, file, state.logger); err != nil {
				return err
			}

			batch := usecase.NewBatchReportService(services.Reports, workers, state.logger)
			result, err := batch.RenderAll(ctx, requests, writeArtifact(outDir))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, item := range result.Items {
				if item.Err != nil {
					fmt.Fprintf(out, "FAIL  %d:%d  %v\n", item.Request.HomeTeamID, item.Request.GuestTeamID, item.Err)
					continue
				}
				fmt.Fprintf(out, "OK    %s  (%d notices, %d ms)\n", filepath.Join(outDir, item.Filename), item.Notices, item.DurationMs)
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d of %d fixtures failed", result.Failed, len(result.Items))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&fixtures, "fixture", nil, "fixture as HOME:GUEST[@RFC3339 tip-off], repeatable")
	cmd.Flags().StringVar(&outDir, "out", ".", "directory the HTML reports are written to")
	cmd.Flags().StringVar(&annotations, "annotations", "", "annotation export to import before rendering (defaults to ANNOTATIONS_FILE)")
	cmd.Flags().StringVar(&scout, "scout", string(scouting.SideGuest), "roster to scout: home or guest")
	cmd.Flags().Int64Var(&season, "season", 0, "season id (defaults to SCOUT_SEASON_ID)")
	cmd.Flags().IntVar(&workers, "workers", 4, "fixtures rendered in parallel")
	return cmd
}

// parseFixture reads HOME:GUEST with an optional @RFC3339 tip-off.
func parseFixture(raw string) (usecase.ReportRequest, error) {
	teams, when, hasTime := strings.Cut(strings.TrimSpace(raw), "@")
	home, guest, ok := strings.Cut(teams, ":")
	if !ok {
		return usecase.ReportRequest{}, fmt.Errorf("fixture %q must look like HOME:GUEST[@RFC3339]", raw)
	}

	homeID, err := strconv.ParseInt(strings.TrimSpace(home), 10, 64)
	if err != nil || homeID <= 0 {
		return usecase.ReportRequest{}, fmt.Errorf("fixture %q: home team id must be a positive number", raw)
	}
	guestID, err := strconv.ParseInt(strings.TrimSpace(guest), 10, 64)
	if err != nil || guestID <= 0 {
		return usecase.ReportRequest{}, fmt.Errorf("fixture %q: guest team id must be a positive number", raw)
	}

	req := usecase.ReportRequest{HomeTeamID: homeID, GuestTeamID: guestID}
	if hasTime {
		tipOff, err := time.Parse(time.RFC3339, strings.TrimSpace(when))
		if err != nil {
			return usecase.ReportRequest{}, fmt.Errorf("fixture %q: tip-off must be RFC3339: %w", raw, err)
		}
		req.TipOff = tipOff
	}
	return req, nil
}

func writeArtifact(dir string) usecase.ArtifactSink {
	return func(_ context.Context, artifact usecase.ReportArtifact) error {
		path := filepath.Join(dir, artifact.Filename)
		if err := os.WriteFile(path, artifact.HTML, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
}
