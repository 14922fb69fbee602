package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
)

func sampleView() loader.RunView {
	trades := []model.Trade{
		{EntryPrice: 100, ExitPrice: 105, Size: 1, Direction: "long", LogReturn: 0.0488},
		{EntryPrice: 100, ExitPrice: 97, Size: 1, Direction: "long", LogReturn: -0.0305},
		{EntryPrice: 100, ExitPrice: 108, Size: 1, Direction: "long", LogReturn: 0.0770},
	}
	n := 3
	exp := 0.031
	equity := []model.EquityPoint{
		{Time: 0, Equity: 1.0},
		{Time: 1, Equity: 1.05},
		{Time: 2, Equity: 1.02},
		{Time: 3, Equity: 1.10},
	}
	return loader.RunView{
		Run: model.Run{
			ID:             "r1",
			DisplayName:    "Forward Q3",
			Status:         model.RunStatusOpen,
			RunType:        model.RunTypeForward,
			InitialCapital: 10000,
		},
		Trades:       trades,
		Metrics:      model.MetricsSnapshot{TotalTrades: &n, ExpectancyR: &exp},
		Equity:       equity,
		VariantLabel: "Breakout v1",
		SystemLabel:  "Trend Following",
	}
}

func TestWriteRendersFullReport(t *testing.T) {
	mc := &model.MonteCarloSummary{MeanFinalReturn: 4.2, WorstCaseDD: -12.5}
	kelly := &model.KellySimulation{
		AllResults: []model.KellyPoint{
			{Fraction: 0.01, MeanFinalCapital: 10500, RuinProbability: 0.001},
			{Fraction: 0.05, MeanFinalCapital: 12000, RuinProbability: 0.02},
		},
		GrowthOptimal: &model.KellyPoint{Fraction: 0.05},
		SafeFraction:  &model.KellyPoint{Fraction: 0.01},
	}
	bundle := loader.AnalyticsBundle{
		MonteCarlo: mc,
		Kelly:      kelly,
		WalkForward: []model.WalkForwardWindow{
			{TrainExpectancy: 0.2, TestExpectancy: 0.25, TrainSharpe: 1.2, TestSharpe: 1.3},
			{TrainExpectancy: 0.3, TestExpectancy: 0.31, TrainSharpe: 1.0, TestSharpe: 1.1},
		},
		Regime: &model.RegimeDetection{Labels: []int{0, 1, 0}},
	}
	snapshot := &model.AnalyticsSnapshot{RunID: "r1", Version: 3, IsDirty: true}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleView(), bundle, snapshot))
	html := buf.String()

	assert.Contains(t, html, "Forward Q3")
	assert.Contains(t, html, "Trend Following")
	assert.Contains(t, html, "Breakout v1")
	assert.Contains(t, html, "analytics stale")
	assert.Contains(t, html, "<polyline", "equity chart must render")
	assert.Contains(t, html, "<rect", "histogram must render")
	assert.Contains(t, html, "growth-optimal")
	assert.Contains(t, html, "Stable", "both windows improve out of sample")
	assert.Contains(t, html, "regime")
}

func TestWriteOmitsMissingPanels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleView(), loader.AnalyticsBundle{}, nil))
	html := buf.String()

	assert.NotContains(t, html, "Monte Carlo")
	assert.NotContains(t, html, "Kelly sweep")
	assert.NotContains(t, html, "Walk-forward")
	assert.NotContains(t, html, "analytics stale")
}

func TestWriteEmptyRun(t *testing.T) {
	view := loader.RunView{Run: model.Run{ID: "r2", Status: model.RunStatusFinished, RunType: model.RunTypeBacktest, InitialCapital: 1}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, view, loader.AnalyticsBundle{}, nil))
	assert.True(t, strings.Contains(buf.String(), "no data") || strings.Contains(buf.String(), "no trades"))
}

func TestLinePathSkipsNonFinite(t *testing.T) {
	points := linePath([]float64{1, 2, nan(), 3})
	assert.NotEmpty(t, points)
	assert.NotContains(t, points, "NaN")
}

func nan() float64 {
	var zero float64
	return zero / zero
}
