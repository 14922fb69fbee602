package components

import (
	"math"
	"strings"
	"testing"

	"github.com/x88a9/edge-lab/internal/model"
)

func TestDataTableEmptyFallback(t *testing.T) {
	table := DataTable{Columns: []string{"A"}, Empty: "no rows"}
	out := table.Render()
	if !strings.Contains(out, "no rows") {
		t.Errorf("expected empty fallback, got %q", out)
	}
}

func TestDataTableRendersRows(t *testing.T) {
	table := DataTable{
		Columns: []string{"NAME", "VALUE"},
		Widths:  []int{10, 8},
		Rows:    [][]string{{"alpha", "1.0"}, {"beta", "2.0"}},
		Cursor:  1,
	}
	out := table.Render()
	for _, want := range []string{"NAME", "alpha", "beta"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in table output", want)
		}
	}
}

func TestLineChartHandlesEmptyAndNaN(t *testing.T) {
	if out := LineChart(nil, 40, 6, "1"); !strings.Contains(out, "no data") {
		t.Errorf("expected no-data fallback, got %q", out)
	}

	nan := math.NaN()
	if out := LineChart([]float64{nan, nan}, 40, 6, "1"); !strings.Contains(out, "not finite") {
		t.Errorf("expected non-finite fallback, got %q", out)
	}

	out := LineChart([]float64{1, 2, 3, 2, 1}, 20, 4, "1")
	if lines := strings.Split(out, "\n"); len(lines) != 4 {
		t.Errorf("expected 4 chart rows, got %d", len(lines))
	}
}

func TestWalkForwardPanelFiltersAndClassifies(t *testing.T) {
	windows := []model.WalkForwardWindow{
		{TrainExpectancy: 0.2, TestExpectancy: 0.1, TrainSharpe: 1.0, TestSharpe: 0.8},
		{TrainExpectancy: math.NaN(), TestExpectancy: 0.1, TrainSharpe: 1.0, TestSharpe: 0.8},
		{TrainExpectancy: 0.2, TestExpectancy: 0.05, TrainSharpe: 1.0, TestSharpe: 0.6},
	}

	out := WalkForwardPanel(windows)
	if !strings.Contains(out, "DEGRADING") {
		t.Errorf("expected DEGRADING badge, got %q", out)
	}
	if !strings.Contains(out, "2/2 windows degrade") {
		t.Errorf("expected filtered degrade count, got %q", out)
	}
}

func TestWalkForwardPanelAllNonFinite(t *testing.T) {
	windows := []model.WalkForwardWindow{
		{TrainExpectancy: math.Inf(1), TestExpectancy: 0.1, TrainSharpe: 1, TestSharpe: 1},
	}
	out := WalkForwardPanel(windows)
	if !strings.Contains(out, "no finite walk-forward windows") {
		t.Errorf("expected fallback, got %q", out)
	}
}

func TestKellyPanelMarksFlaggedFractions(t *testing.T) {
	kelly := &model.KellySimulation{
		AllResults: []model.KellyPoint{
			{Fraction: 0.01}, {Fraction: 0.05},
		},
		GrowthOptimal: &model.KellyPoint{Fraction: 0.05},
		SafeFraction:  &model.KellyPoint{Fraction: 0.01},
	}
	out := KellyPanel(kelly)
	if !strings.Contains(out, "growth-optimal 0.050") {
		t.Errorf("expected growth-optimal legend, got %q", out)
	}
	if !strings.Contains(out, "safe 0.010") {
		t.Errorf("expected safe legend, got %q", out)
	}
}

func TestPanelsNilFallbacks(t *testing.T) {
	cases := map[string]string{
		"monte carlo": MonteCarloPanel(nil),
		"ruin":        RiskOfRuinPanel(nil),
		"kelly":       KellyPanel(nil),
	}
	for name, out := range cases {
		if !strings.Contains(out, "not computed") {
			t.Errorf("%s: expected not-computed fallback, got %q", name, out)
		}
	}
}
