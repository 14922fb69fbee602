package models

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/metrics"
	"github.com/x88a9/edge-lab/internal/model"
)

func (a App) routeLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		a.login, cmd = a.login.handleKey(msg, a.loginCmd)
		return a, cmd
	default:
		var cmd tea.Cmd
		a.login.email, cmd = a.login.email.Update(msg)
		return a, cmd
	}
}

func (a App) routeSystems(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case systemsLoadedMsg:
		a.systems.systems = msg
		a.systems.loading = false
		if a.systems.cursor >= len(msg) {
			a.systems.cursor = 0
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "up", "k":
			if a.systems.cursor > 0 {
				a.systems.cursor--
			}
		case "down", "j":
			if a.systems.cursor < len(a.systems.systems)-1 {
				a.systems.cursor++
			}
		case "r":
			a.systems.loading = true
			return a, a.loadSystemsCmd()
		case "n":
			a.form = a.newSystemForm()
			return a, nil
		case "enter":
			if system, ok := a.systems.selected(); ok {
				a.variants = NewVariantsModel()
				a.variants.systemID = system.ID
				a.variants.systemLabel = system.Label()
				a.active = viewVariants
				return a, a.loadVariantsCmd(system.ID)
			}
		}
	}
	return a, nil
}

func (a App) routeVariants(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case variantsLoadedMsg:
		if msg.systemID == a.variants.systemID {
			a.variants.variants = msg.variants
			a.variants.loading = false
			if a.variants.cursor >= len(msg.variants) {
				a.variants.cursor = 0
			}
		}
		return a, nil

	case summaryLoadedMsg:
		summary := model.VariantSummary(msg)
		a.variants.summary = &summary
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "esc":
			a.active = viewSystems
			return a, nil
		case "up", "k":
			if a.variants.cursor > 0 {
				a.variants.cursor--
				a.variants.summary = nil
			}
		case "down", "j":
			if a.variants.cursor < len(a.variants.variants)-1 {
				a.variants.cursor++
				a.variants.summary = nil
			}
		case "r":
			a.variants.loading = true
			return a, a.loadVariantsCmd(a.variants.systemID)
		case "s":
			if variant, ok := a.variants.selected(); ok {
				return a, a.loadSummaryCmd(variant.ID)
			}
		case "n":
			a.form = a.newVariantForm(a.variants.systemID)
			return a, nil
		case "enter":
			if variant, ok := a.variants.selected(); ok {
				a.runList = NewRunsModel()
				a.runList.variantID = variant.ID
				a.runList.variantLabel = variant.Label()
				a.runList.systemLabel = a.variants.systemLabel
				a.active = viewRuns
				return a, a.loadRunsCmd(variant.ID)
			}
		}
	}
	return a, nil
}

func (a App) routeRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runsLoadedMsg:
		if msg.variantID == a.runList.variantID {
			a.runList.runs = msg.runs
			a.runList.loading = false
			if a.runList.cursor >= len(msg.runs) {
				a.runList.cursor = 0
			}
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "esc":
			a.active = viewVariants
			return a, nil
		case "up", "k":
			if a.runList.cursor > 0 {
				a.runList.cursor--
			}
		case "down", "j":
			if a.runList.cursor < len(a.runList.runs)-1 {
				a.runList.cursor++
			}
		case "r":
			a.runList.loading = true
			return a, a.loadRunsCmd(a.runList.variantID)
		case "n":
			a.form = a.newRunForm(a.runList.variantID)
			return a, nil
		case "enter":
			if run, ok := a.runList.selected(); ok {
				a.detail = NewRunDetailModel(a.detail.ruin, a.detail.logScale)
				a.detail.runID = run.ID
				a.detail.runLabel = run.Label()
				a.detail.variantLabel = a.runList.variantLabel
				a.detail.systemLabel = a.runList.systemLabel
				a.active = viewRunDetail
				return a, tea.Batch(
					a.loadRunViewCmd(run.ID),
					a.loadAnalyticsCmd(run.ID, a.detail.ruin),
					a.loadSnapshotCmd(run.ID),
				)
			}
		}
	}
	return a, nil
}

func (a App) routeDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runViewLoadedMsg:
		view := loader.RunView(msg)
		if view.Run.ID != a.detail.runID {
			return a, nil
		}
		a.detail.view = view
		a.detail.loading = false
		if view.VariantLabel != "" {
			a.detail.variantLabel = view.VariantLabel
		}
		if view.SystemLabel != "" {
			a.detail.systemLabel = view.SystemLabel
		}
		if a.detail.tradeCursor >= len(view.Trades) {
			a.detail.tradeCursor = 0
		}
		return a, nil

	case tradeDraftMsg:
		if msg.trade.RunID == a.detail.runID {
			a.detail.view.Trades = append(a.detail.view.Trades, msg.trade)
		}
		return a, nil

	case analyticsLoadedMsg:
		a.detail.bundle = loader.AnalyticsBundle(msg)
		a.detail.analyticsOK = true
		return a, nil

	case snapshotMsg:
		snapshot := model.AnalyticsSnapshot(msg)
		a.detail.snapshot = &snapshot
		a.detail.computing = false
		if snapshot.IsDirty {
			metrics.DirtySnapshots.Inc()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleDetailKey(msg)
	}
	return a, nil
}

func (a App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc":
		a.active = viewRuns
		return a, a.loadRunsCmd(a.runList.variantID)
	case "tab", "right":
		a.detail.tab = (a.detail.tab + 1) % len(detailTabs)
		return a, nil
	case "shift+tab", "left":
		a.detail.tab = (a.detail.tab - 1 + len(detailTabs)) % len(detailTabs)
		return a, nil
	case "up", "k":
		if a.detail.tab == tabTrades && a.detail.tradeCursor > 0 {
			a.detail.tradeCursor--
		}
		return a, nil
	case "down", "j":
		if a.detail.tab == tabTrades && a.detail.tradeCursor < len(a.detail.view.Trades)-1 {
			a.detail.tradeCursor++
		}
		return a, nil
	case "l":
		a.detail.logScale = !a.detail.logScale
		return a, nil
	case "r":
		return a, tea.Batch(
			a.loadRunViewCmd(a.detail.runID),
			a.loadAnalyticsCmd(a.detail.runID, a.detail.ruin),
		)
	case "f":
		if a.detail.view.Run.IsOpen() {
			return a, a.finishRunCmd(a.detail.runID)
		}
		return a, nil
	case "c":
		if a.detail.computing {
			return a, nil
		}
		a.detail.computing = true
		poller := loader.NewSnapshotPoller(a.client, a.pollInterval, a.pollMaxRetries)
		return a, a.computeAnalyticsCmd(poller, a.detail.runID)
	case "t":
		if a.detail.view.Run.IsOpen() {
			a.form = a.newTradeForm(a.detail.runID, nil)
		}
		return a, nil
	case "e":
		if trade, ok := a.detail.selectedTrade(); ok && a.detail.view.Run.IsOpen() {
			a.form = a.newTradeForm(a.detail.runID, &trade)
		}
		return a, nil
	case "d":
		if trade, ok := a.detail.selectedTrade(); ok && a.detail.view.Run.IsOpen() {
			return a, a.deleteTradeCmd(trade.ID)
		}
		return a, nil
	}
	return a, nil
}
