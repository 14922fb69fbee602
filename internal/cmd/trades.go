package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/model"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Record and manage trades",
}

var tradesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all trades",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		trades, err := client.ListTrades(ctx)
		if err != nil {
			return err
		}
		return printJSON(trades)
	},
}

var tradesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one trade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		trade, err := client.GetTrade(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(trade)
	},
}

var tradePayload model.TradePayload
var tradeStop float64

func tradeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tradePayload.EntryPrice, "entry", 0, "entry price (required)")
	cmd.Flags().Float64Var(&tradePayload.ExitPrice, "exit", 0, "exit price (required)")
	cmd.Flags().Float64Var(&tradeStop, "stop", 0, "stop loss price, 0 for none")
	cmd.Flags().Float64Var(&tradePayload.Size, "size", 0, "position size (required)")
	cmd.Flags().StringVar(&tradePayload.Direction, "direction", model.DirectionLong, "long or short")
	cmd.Flags().StringVar(&tradePayload.Timeframe, "timeframe", "", "timeframe: H1, H4 or D1")
	cmd.Flags().StringVar(&tradePayload.Timestamp, "timestamp", "", "execution timestamp, RFC 3339")
}

var tradesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade against an open run",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tradePayload.RunID == "" {
			return fmt.Errorf("--run is required")
		}
		if tradeStop > 0 {
			tradePayload.StopLoss = &tradeStop
		}

		ctx, cancel := cmdContext(cmd)
		defer cancel()

		trade, err := client.CreateTrade(ctx, tradePayload)
		if err != nil {
			return err
		}
		log.WithFields(map[string]any{
			"trade_id": trade.ID,
			"run_id":   trade.RunID,
		}).Info("Trade recorded")
		return printJSON(trade)
	},
}

var tradesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Correct a recorded trade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if tradeStop > 0 {
			tradePayload.StopLoss = &tradeStop
		}

		ctx, cancel := cmdContext(cmd)
		defer cancel()

		trade, err := client.UpdateTrade(ctx, args[0], tradePayload)
		if err != nil {
			return err
		}
		log.WithField("trade_id", trade.ID).Info("Trade updated")
		return printJSON(trade)
	},
}

var tradesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded trade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		if err := client.DeleteTrade(ctx, args[0]); err != nil {
			return err
		}
		log.WithField("trade_id", args[0]).Info("Trade deleted")
		fmt.Println("Deleted")
		return nil
	},
}

func init() {
	tradesAddCmd.Flags().StringVar(&tradePayload.RunID, "run", "", "owning run id (required)")
	tradeFlags(tradesAddCmd)
	tradeFlags(tradesUpdateCmd)

	tradesCmd.AddCommand(tradesListCmd, tradesGetCmd, tradesAddCmd, tradesUpdateCmd, tradesDeleteCmd)
	rootCmd.AddCommand(tradesCmd)
}
