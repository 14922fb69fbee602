package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/loader"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Server-computed analytics for a run",
}

var analyticsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the stored analytics snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		snapshot, err := client.GetAnalytics(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(snapshot)
	},
}

var computeNoWait bool

var analyticsComputeCmd = &cobra.Command{
	Use:   "compute <run-id>",
	Short: "Trigger a snapshot recompute and wait for the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if computeNoWait {
			ctx, cancel := cmdContext(cmd)
			defer cancel()
			return client.ComputeAnalytics(ctx, args[0])
		}

		// Polling can outlast a single request timeout.
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		poller := loader.NewSnapshotPoller(client, cfg.PollInterval(), cfg.Analytics.PollMaxRetries)
		snapshot, err := poller.ComputeAndWait(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(snapshot)
	},
}

var analyticsMonteCarloCmd = &cobra.Command{
	Use:   "monte-carlo <run-id>",
	Short: "Monte Carlo resampling of the run's trades",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		summary, err := client.RunMonteCarlo(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(summary)
	},
}

var analyticsRuinCmd = &cobra.Command{
	Use:   "ruin <run-id>",
	Short: "Risk-of-ruin simulation with the configured sizing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		summary, err := client.RunRiskOfRuin(ctx, args[0], ruinParams())
		if err != nil {
			return err
		}
		return printJSON(summary)
	},
}

var analyticsKellyCmd = &cobra.Command{
	Use:   "kelly <run-id>",
	Short: "Position-size sweep across Kelly fractions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		sim, err := client.RunKellySimulation(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(sim)
	},
}

var analyticsWalkForwardCmd = &cobra.Command{
	Use:   "walk-forward <run-id>",
	Short: "Train/test windows for out-of-sample stability",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		windows, err := client.RunWalkForward(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(windows)
	},
}

var analyticsRegimesCmd = &cobra.Command{
	Use:   "regimes <run-id>",
	Short: "Per-trade market regime labels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		detection, err := client.RunRegimeDetection(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(detection)
	},
}

func init() {
	analyticsComputeCmd.Flags().BoolVar(&computeNoWait, "no-wait", false, "trigger the compute without waiting for the snapshot")

	analyticsCmd.AddCommand(
		analyticsShowCmd,
		analyticsComputeCmd,
		analyticsMonteCarloCmd,
		analyticsRuinCmd,
		analyticsKellyCmd,
		analyticsWalkForwardCmd,
		analyticsRegimesCmd,
	)
	rootCmd.AddCommand(analyticsCmd)
}
