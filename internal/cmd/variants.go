package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/model"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Browse and create system variants",
}

var variantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants across all systems",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		variants, err := client.ListVariants(ctx)
		if err != nil {
			return err
		}
		return printJSON(variants)
	},
}

var variantsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		variant, err := client.GetVariant(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(variant)
	},
}

var variantsRunsCmd = &cobra.Command{
	Use:   "runs <id>",
	Short: "List the runs recorded against a variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		runs, err := client.ListVariantRuns(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(runs)
	},
}

var variantsSummaryCmd = &cobra.Command{
	Use:   "summary <id>",
	Short: "Show the cross-run aggregate for a variant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := cmdContext(cmd)
		defer cancel()

		summary, err := client.GetVariantSummary(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(summary)
	},
}

var (
	createVariant model.CreateVariant
	variantParams string
	variantHash   string
)

var variantsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new variant of a system",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !json.Valid([]byte(variantParams)) {
			return fmt.Errorf("--params is not valid JSON")
		}
		createVariant.ParameterJSON = json.RawMessage(variantParams)
		createVariant.ParameterHash = variantHash
		if createVariant.ParameterHash == "" {
			sum := sha256.Sum256([]byte(variantParams))
			createVariant.ParameterHash = hex.EncodeToString(sum[:])[:16]
		}

		ctx, cancel := cmdContext(cmd)
		defer cancel()

		variant, err := client.CreateVariant(ctx, createVariant)
		if err != nil {
			return err
		}
		log.WithField("variant_id", variant.ID).Info("Variant created")
		return printJSON(variant)
	},
}

func init() {
	variantsCreateCmd.Flags().StringVar(&createVariant.StrategyID, "system", "", "owning system id (required)")
	variantsCreateCmd.Flags().StringVar(&createVariant.Name, "name", "", "internal name (required)")
	variantsCreateCmd.Flags().StringVar(&createVariant.DisplayName, "display-name", "", "human-readable name (required)")
	variantsCreateCmd.Flags().IntVar(&createVariant.VersionNumber, "version", 1, "version number")
	variantsCreateCmd.Flags().StringVar(&variantParams, "params", "{}", "parameter set as a JSON object")
	variantsCreateCmd.Flags().StringVar(&variantHash, "param-hash", "", "parameter hash, derived from --params when omitted")
	variantsCreateCmd.Flags().StringVar(&createVariant.Description, "description", "", "free-form description")

	variantsCmd.AddCommand(variantsListCmd, variantsGetCmd, variantsRunsCmd, variantsSummaryCmd, variantsCreateCmd)
	rootCmd.AddCommand(variantsCmd)
}
