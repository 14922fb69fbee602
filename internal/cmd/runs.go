package cmd

import (
	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/model"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse, create and finish runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		runs, err := client.ListRuns(ctx)
		if err != nil {
			return err
		}
		return printJSON(runs)
	},
}

var runsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		run, err := client.GetRun(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(run)
	},
}

var runsTradesCmd = &cobra.Command{
	Use:   "trades <id>",
	Short: "List the trades recorded against a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		trades, err := client.RunTrades(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(trades)
	},
}

var runsMetricsCmd = &cobra.Command{
	Use:   "metrics <id>",
	Short: "Show the metrics snapshot for a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		snapshot, err := client.RunMetrics(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(snapshot)
	},
}

var runsEquityCmd = &cobra.Command{
	Use:   "equity <id>",
	Short: "Show the equity curve for a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		points, err := client.RunEquity(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(points)
	},
}

var runsFinishCmd = &cobra.Command{
	Use:   "finish <id>",
	Short: "Close an open run, no further trades accepted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		run, err := client.FinishRun(ctx, args[0])
		if err != nil {
			return err
		}
		log.WithField("run_id", run.ID).Info("Run finished")
		return printJSON(run)
	},
}

var (
	createRun      model.CreateRun
	createRunLimit int
)

var runsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new run against a variant",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createRunLimit > 0 {
			createRun.TradeLimit = &createRunLimit
		}

		ctx, cancel := cmdContext(cmd)
		defer cancel()

		run, err := client.CreateRun(ctx, createRun)
		if err != nil {
			return err
		}
		log.WithField("run_id", run.ID).Info("Run created")
		return printJSON(run)
	},
}

func init() {
	runsCreateCmd.Flags().StringVar(&createRun.VariantID, "variant", "", "variant id (required)")
	runsCreateCmd.Flags().StringVar(&createRun.DisplayName, "display-name", "", "human-readable name (required)")
	runsCreateCmd.Flags().Float64Var(&createRun.InitialCapital, "capital", 0, "initial capital (required)")
	runsCreateCmd.Flags().StringVar(&createRun.RunType, "type", model.RunTypeForward, "run type: backtest, forward or montecarlo")
	runsCreateCmd.Flags().IntVar(&createRunLimit, "trade-limit", 0, "maximum trades, 0 for unlimited")
	runsCreateCmd.Flags().StringVar(&createRun.Description, "description", "", "free-form description")

	runsCmd.AddCommand(runsListCmd, runsGetCmd, runsTradesCmd, runsMetricsCmd, runsEquityCmd, runsFinishCmd, runsCreateCmd)
	rootCmd.AddCommand(runsCmd)
}
