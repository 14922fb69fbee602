package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
	"github.com/x88a9/edge-lab/internal/report"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <run-id>",
	Short: "Render a standalone HTML report for a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runID := args[0]
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		runLoader := loader.NewRunLoader(client, time.Duration(cfg.Dashboard.LabelCacheTTL)*time.Second, log)

		view, err := runLoader.Load(ctx, runID)
		if err != nil {
			return err
		}
		bundle := runLoader.Analytics(ctx, runID, ruinParams())

		var snapshot *model.AnalyticsSnapshot
		snap, err := client.GetAnalytics(ctx, runID)
		switch {
		case err == nil:
			snapshot = &snap
		case errors.Is(err, api.ErrNotComputed):
			// No snapshot yet, the report renders without staleness info.
		default:
			log.WithError(err).Warn("Failed to fetch analytics snapshot")
		}

		out := reportOut
		if out == "" {
			out = fmt.Sprintf("edge-lab-%s.html", runID)
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer f.Close()

		if err := report.Write(f, view, bundle, snapshot); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}

		log.WithFields(map[string]any{
			"run_id": runID,
			"path":   out,
		}).Info("Report written")
		fmt.Printf("Report written to %s\n", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output path, defaults to edge-lab-<run-id>.html")
	rootCmd.AddCommand(reportCmd)
}
