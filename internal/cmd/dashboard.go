package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/x88a9/edge-lab/internal/health"
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/tui/models"
)

var metricsPort int

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"ui"},
	Short:   "Open the interactive terminal dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if metricsPort > 0 {
			cfg.Metrics.Enabled = true
			cfg.Metrics.Port = metricsPort
		}

		runLoader := loader.NewRunLoader(client, time.Duration(cfg.Dashboard.LabelCacheTTL)*time.Second, log)

		app := models.NewApp(client, runLoader, models.Options{
			Ruin:            ruinParams(),
			LogScaleDefault: cfg.Dashboard.LogScaleDefault,
			PollInterval:    cfg.PollInterval(),
			PollMaxRetries:  cfg.Analytics.PollMaxRetries,
		})

		program := tea.NewProgram(app, tea.WithAltScreen())

		// A 401 anywhere drops the dashboard back to the login screen.
		session.OnUnauthorized(func() {
			program.Send(models.SessionExpiredMsg{})
		})

		refresher := loader.NewRefresher(log)
		if err := refresher.Add(cfg.Dashboard.RefreshSpec, "dashboard", func(ctx context.Context) error {
			program.Send(models.RefreshMsg{})
			return nil
		}); err != nil {
			return err
		}
		refresher.Start()
		defer refresher.Stop()

		if cfg.Metrics.Enabled {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			srv := health.NewServer(health.Config{
				ServiceName: "edge-lab-dashboard",
				Version:     Version,
				Commit:      GitCommit,
				Port:        fmt.Sprintf("%d", cfg.Metrics.Port),
				Logger:      log,
				Upstream:    client,
			})
			if err := srv.Start(ctx); err != nil {
				return fmt.Errorf("failed to start health server: %w", err)
			}
			srv.SetReady(true)
		}

		log.WithField("refresh", cfg.Dashboard.RefreshSpec).Info("Dashboard starting")
		start := time.Now()
		_, err := program.Run()
		log.WithField("uptime", time.Since(start).Round(time.Second)).Info("Dashboard closed")
		return err
	},
}

func init() {
	dashboardCmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "serve health and metrics on this port")
	rootCmd.AddCommand(dashboardCmd)
}
