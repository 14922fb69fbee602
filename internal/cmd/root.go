// Package cmd implements the edge-lab CLI: resource commands for
// systems, variants, runs and trades, the analytics commands and the
// interactive dashboard.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/config"
	"github.com/x88a9/edge-lab/internal/logger"
	"github.com/x88a9/edge-lab/internal/metrics"
	"github.com/x88a9/edge-lab/internal/model"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	cfg        *config.Config
	log        *logrus.Logger
	session    *api.Session
	client     *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "edge-lab",
	Short: "Trading research console for the Edge Lab API",
	Long: `edge-lab is a terminal client for the Edge Lab research platform:
browse systems, variants and runs, record trades, and inspect
server-computed analytics from the command line or the interactive
dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd.Context())
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("edge-lab %s\nRun 'edge-lab --help' for available commands\n", Version)
	},
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to configuration file")
}

// initialize loads config, the secrets overlay and wires the API client.
func initialize(ctx context.Context) error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.LoadSecrets(ctx, cfg); err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log = logger.NewLogger(cfg.App.LogLevel)
	metrics.InitRegistry()

	session = api.NewSession(cfg.Auth.TokenFile)
	client = api.NewClient(api.Config{
		BaseURL:      cfg.API.BaseURL,
		Timeout:      cfg.RequestTimeout(),
		MaxRetries:   cfg.API.MaxRetries,
		RetryWaitMin: time.Duration(cfg.API.RetryWaitMinMS) * time.Millisecond,
		RetryWaitMax: time.Duration(cfg.API.RetryWaitMaxMS) * time.Millisecond,
		RateLimit:    cfg.API.RateLimit,
	}, session, log)

	session.OnUnauthorized(func() {
		log.Warn("Session rejected by the API, token cleared")
	})

	return nil
}

// ruinParams builds the configured risk-of-ruin query parameters.
func ruinParams() model.RiskOfRuinParams {
	return model.RiskOfRuinParams{
		PositionFraction: cfg.Analytics.PositionFraction,
		RuinThreshold:    cfg.Analytics.RuinThreshold,
		Simulations:      cfg.Analytics.RuinSimulations,
	}
}

// printJSON writes v as indented JSON to stdout, the output contract
// for all non-interactive commands.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// cmdContext returns the context for one CLI invocation.
func cmdContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 2*cfg.RequestTimeout())
}
