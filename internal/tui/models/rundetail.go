package models

import (
	"fmt"
	"strings"

	"github.com/x88a9/edge-lab/internal/analytics"
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
	"github.com/x88a9/edge-lab/internal/tui/components"
	"github.com/x88a9/edge-lab/internal/tui/styles"
)

var detailTabs = []string{"Overview", "Trades", "Distribution", "Monte Carlo", "Kelly", "Walk-Forward", "Regimes", "Ruin"}

const (
	tabOverview = iota
	tabTrades
	tabDistribution
	tabMonteCarlo
	tabKelly
	tabWalkForward
	tabRegimes
	tabRuin
)

// RunDetailModel is the run detail screen: a tab per analytics panel,
// all fed from the composite run view and the pre-fetched analytics
// bundle. Panels degrade to their fallback individually.
type RunDetailModel struct {
	runID        string
	runLabel     string
	variantLabel string
	systemLabel  string

	view     loader.RunView
	bundle   loader.AnalyticsBundle
	snapshot *model.AnalyticsSnapshot

	tab         int
	tradeCursor int
	loading     bool
	analyticsOK bool
	computing   bool
	logScale    bool
	ruin        model.RiskOfRuinParams
}

// NewRunDetailModel creates the detail screen with configured ruin
// parameters and log-scale default.
func NewRunDetailModel(ruin model.RiskOfRuinParams, logScale bool) RunDetailModel {
	return RunDetailModel{ruin: ruin, logScale: logScale, loading: true}
}

func (m RunDetailModel) selectedTrade() (model.Trade, bool) {
	if m.tradeCursor < 0 || m.tradeCursor >= len(m.view.Trades) {
		return model.Trade{}, false
	}
	return m.view.Trades[m.tradeCursor], true
}

// View renders the active tab.
func (m RunDetailModel) View(width, height int) string {
	if m.loading {
		return styles.Dim("  loading run...")
	}

	title := styles.Title.Render("  "+m.runLabel) + "  " + styles.RunStatusBadge(m.view.Run.Status)
	if m.snapshot != nil && m.snapshot.IsDirty {
		title += "  " + styles.DirtyBadge()
	}
	if m.computing {
		title += "  " + styles.Dim("computing analytics...")
	}

	tabs := components.TabBar{Tabs: detailTabs, ActiveTab: m.tab, Width: width}.Render()

	chartWidth := width - 8
	if chartWidth < 30 {
		chartWidth = 30
	}
	chartHeight := height - 14
	if chartHeight < 6 {
		chartHeight = 6
	}

	if m.tab >= tabMonteCarlo && !m.analyticsOK {
		return strings.Join([]string{title, tabs, "", styles.Dim("  loading analytics...")}, "\n")
	}

	var body string
	switch m.tab {
	case tabOverview:
		body = m.overviewTab(chartWidth, chartHeight)
	case tabTrades:
		body = m.tradesTab()
	case tabDistribution:
		body = components.HistogramPanel(analytics.RMultiples(m.view.Trades), chartWidth)
	case tabMonteCarlo:
		body = orPanelErr(components.MonteCarloPanel(m.bundle.MonteCarlo), m.bundle.MonteCarloErr)
	case tabKelly:
		body = orPanelErr(components.KellyPanel(m.bundle.Kelly), m.bundle.KellyErr)
	case tabWalkForward:
		body = orPanelErr(components.WalkForwardPanel(m.bundle.WalkForward), m.bundle.WalkForwardErr)
	case tabRegimes:
		body = m.regimesTab(chartWidth)
	case tabRuin:
		body = orPanelErr(components.RiskOfRuinPanel(m.bundle.RiskOfRuin), m.bundle.RiskOfRuinErr)
	}

	return strings.Join([]string{title, tabs, "", body}, "\n")
}

// overviewTab shows the equity chart and the headline metric cards.
func (m RunDetailModel) overviewTab(chartWidth, chartHeight int) string {
	var sections []string

	if m.view.EquityErr != nil {
		sections = append(sections, components.NoData("equity unavailable: "+m.view.EquityErr.Error()))
	} else {
		equity := analytics.EquityValues(m.view.Equity)
		drawdown := analytics.FillDrawdowns(m.view.Equity)
		sections = append(sections, components.EquityPanel(equity, drawdown, chartWidth, chartHeight, m.logScale))
	}

	if m.view.MetricsErr != nil {
		sections = append(sections, components.NoData("metrics unavailable"))
	} else {
		s := m.view.Metrics
		sections = append(sections, components.MetricRow(
			components.IntCard("trades", s.TotalTrades),
			components.MetricCard{Label: "expectancy R", Value: s.ExpectancyR, Format: "%.3f", Signed: true},
			components.MetricCard{Label: "total R", Value: s.TotalR, Format: "%.2f", Signed: true},
			components.MetricCard{Label: "kelly f", Value: s.KellyF, Format: "%.3f"},
			components.MetricCard{Label: "max dd R", Value: s.MaxDrawdownR, Format: "%.2f"},
			components.MetricCard{Label: "log growth", Value: s.LogGrowth, Format: "%.4f", Signed: true},
		))

		detail := fmt.Sprintf("  %s %s   %s %s   %s %s",
			styles.Label.Render("wins/losses"),
			styles.Value.Render(fmt.Sprintf("%s/%s", components.FormatFloat(intPtrToFloat(s.Wins), "%.0f"), components.FormatFloat(intPtrToFloat(s.Losses), "%.0f"))),
			styles.Label.Render("avg win R"),
			components.FormatFloat(s.AvgWinR, "%.3f"),
			styles.Label.Render("avg loss R"),
			components.FormatFloat(s.AvgLossR, "%.3f"),
		)
		sections = append(sections, detail)
	}

	return strings.Join(sections, "\n\n")
}

// tradesTab lists the run's trades with computed R-multiples.
func (m RunDetailModel) tradesTab() string {
	if m.view.TradesErr != nil {
		return components.NoData("trades unavailable: " + m.view.TradesErr.Error())
	}

	rows := make([][]string, len(m.view.Trades))
	for i, t := range m.view.Trades {
		rows[i] = []string{
			t.Direction,
			fmt.Sprintf("%.4f", t.EntryPrice),
			fmt.Sprintf("%.4f", t.ExitPrice),
			components.FormatFloat(t.StopLoss, "%.4f"),
			fmt.Sprintf("%.2f", t.Size),
			styles.Signed(t.REstimate(), "%.3f"),
			t.Timeframe,
		}
	}

	hints := ""
	if m.view.Run.IsOpen() {
		hints = styles.Dim("  t add • e edit • d delete")
	} else {
		hints = styles.Dim("  run is finished, trades are read-only")
	}

	table := components.DataTable{
		Columns: []string{"DIR", "ENTRY", "EXIT", "STOP", "SIZE", "R", "TF"},
		Widths:  []int{6, 10, 10, 10, 8, 8, 4},
		Rows:    rows,
		Cursor:  m.tradeCursor,
		Empty:   "no trades recorded",
	}

	return table.Render() + "\n\n" + hints
}

// regimesTab joins server labels to trades positionally; a length
// mismatch renders as an explicit error rather than a misaligned chart.
func (m RunDetailModel) regimesTab(width int) string {
	if m.bundle.RegimeErr != nil {
		return components.NoData("regimes unavailable: " + m.bundle.RegimeErr.Error())
	}
	if m.bundle.Regime == nil {
		return components.NoData("regime detection not computed")
	}

	stats, err := analytics.AggregateRegimes(m.view.Trades, m.bundle.Regime.Labels)
	if err != nil {
		return styles.ErrorText.Render("  " + err.Error())
	}
	return components.RegimePanel(stats, m.bundle.Regime.Labels, width)
}

func orPanelErr(panel string, err error) string {
	if err != nil {
		return components.NoData("unavailable: " + err.Error())
	}
	return panel
}

func intPtrToFloat(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
