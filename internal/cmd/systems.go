package cmd

import (
	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/model"
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "Browse and create trading systems",
}

var systemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all systems",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		systems, err := client.ListSystems(ctx)
		if err != nil {
			return err
		}
		return printJSON(systems)
	},
}

var systemsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		system, err := client.GetSystem(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(system)
	},
}

var systemsVariantsCmd = &cobra.Command{
	Use:   "variants <id>",
	Short: "List the variants of a system",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		variants, err := client.ListSystemVariants(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(variants)
	},
}

var createSystem model.CreateSystem

var systemsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new system",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		system, err := client.CreateSystem(ctx, createSystem)
		if err != nil {
			return err
		}
		log.WithField("system_id", system.ID).Info("System created")
		return printJSON(system)
	},
}

func init() {
	systemsCreateCmd.Flags().StringVar(&createSystem.Name, "name", "", "internal name (required)")
	systemsCreateCmd.Flags().StringVar(&createSystem.DisplayName, "display-name", "", "human-readable name (required)")
	systemsCreateCmd.Flags().StringVar(&createSystem.Asset, "asset", "", "traded asset, e.g. EURUSD (required)")
	systemsCreateCmd.Flags().StringVar(&createSystem.Description, "description", "", "free-form description")

	systemsCmd.AddCommand(systemsListCmd, systemsGetCmd, systemsVariantsCmd, systemsCreateCmd)
	rootCmd.AddCommand(systemsCmd)
}
