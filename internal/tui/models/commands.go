package models

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/metrics"
	"github.com/x88a9/edge-lab/internal/model"
)

func (a App) loadSystemsCmd() tea.Cmd {
	list := a.lists.systemsList()
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		list.Refetch(ctx)
		systems, _, err := list.State()
		return errOr(err, systemsLoadedMsg(systems))
	}
}

func (a App) loadVariantsCmd(systemID string) tea.Cmd {
	list := a.lists.variantsList(a.client, systemID)
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		list.Refetch(ctx)
		variants, _, err := list.State()
		return errOr(err, variantsLoadedMsg{systemID: systemID, variants: variants})
	}
}

func (a App) loadSummaryCmd(variantID string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		summary, err := client.GetVariantSummary(ctx, variantID)
		return errOr(err, summaryLoadedMsg(summary))
	}
}

func (a App) loadRunsCmd(variantID string) tea.Cmd {
	list := a.lists.runsList(a.client, variantID)
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		list.Refetch(ctx)
		runs, _, err := list.State()
		if err == nil {
			open := 0
			for _, r := range runs {
				if r.IsOpen() {
					open++
				}
			}
			metrics.OpenRuns.Set(float64(open))
		}
		return errOr(err, runsLoadedMsg{variantID: variantID, runs: runs})
	}
}

func (a App) loadRunViewCmd(runID string) tea.Cmd {
	runs := a.runs
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		view, err := runs.Load(ctx, runID)
		return errOr(err, runViewLoadedMsg(view))
	}
}

func (a App) loadAnalyticsCmd(runID string, ruin model.RiskOfRuinParams) tea.Cmd {
	runs := a.runs
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		return analyticsLoadedMsg(runs.Analytics(ctx, runID, ruin))
	}
}

// loadSnapshotCmd fetches the current analytics snapshot if one exists.
// "Not computed yet" is the normal case for a fresh run, not an error.
func (a App) loadSnapshotCmd(runID string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		snapshot, err := client.GetAnalytics(ctx, runID)
		if err != nil {
			return nil
		}
		return snapshotMsg(snapshot)
	}
}

func (a App) loginCmd(email, password string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		err := client.Login(ctx, model.Credentials{Email: email, Password: password})
		return errOr(err, loginDoneMsg{email: email})
	}
}

func (a App) finishRunCmd(runID string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		_, err := client.FinishRun(ctx, runID)
		return errOr(err, mutationDoneMsg{toast: "run finished"})
	}
}

func (a App) deleteTradeCmd(tradeID string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := apiCtx()
		defer cancel()
		err := client.DeleteTrade(ctx, tradeID)
		return errOr(err, mutationDoneMsg{toast: "trade deleted"})
	}
}

// computeAnalyticsCmd triggers a snapshot compute and polls until it
// resolves. Runs on the poller's budget so a stuck compute cannot hang
// the UI forever.
func (a App) computeAnalyticsCmd(poller *loader.SnapshotPoller, runID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		snapshot, err := poller.ComputeAndWait(ctx, runID)
		return errOr(err, snapshotMsg(snapshot))
	}
}
