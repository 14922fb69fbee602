package analytics

import (
	"math"
	"testing"

	"github.com/x88a9/edge-lab/internal/model"
)

func TestDrawdownSeries(t *testing.T) {
	equity := []float64{1.0, 1.1, 1.05, 1.2, 0.9}
	dd := DrawdownSeries(equity)
	if len(dd) != len(equity) {
		t.Fatalf("length mismatch: %d", len(dd))
	}
	peak := equity[0]
	for i, e := range equity {
		if e > peak {
			peak = e
		}
		want := e/peak - 1
		if math.Abs(dd[i]-want) > 1e-12 {
			t.Fatalf("dd[%d]: got %v want %v", i, dd[i], want)
		}
		if dd[i] > 0 {
			t.Fatalf("dd[%d] = %v, drawdown must be <= 0", i, dd[i])
		}
	}
}

func TestDrawdownSeriesSinglePoint(t *testing.T) {
	dd := DrawdownSeries([]float64{5})
	if len(dd) != 1 || dd[0] != 0 {
		t.Fatalf("got %v", dd)
	}
}

func TestMaxDrawdownIndex(t *testing.T) {
	dd := DrawdownSeries([]float64{1.0, 1.1, 1.05, 1.2, 0.9})
	if idx := MaxDrawdownIndex(dd); idx != 4 {
		t.Fatalf("got %d want 4", idx)
	}
	if idx := MaxDrawdownIndex(nil); idx != -1 {
		t.Fatalf("empty series: got %d want -1", idx)
	}
}

func TestLogScaleFloorsNonPositive(t *testing.T) {
	out := LogScale([]float64{1, 0, -3})
	if out[0] != 0 {
		t.Fatalf("log(1) should be 0, got %v", out[0])
	}
	if math.IsInf(out[1], 0) || math.IsNaN(out[1]) {
		t.Fatalf("zero equity must be floored, got %v", out[1])
	}
	if math.IsNaN(out[2]) {
		t.Fatalf("negative equity must be floored, got %v", out[2])
	}
}

func TestFillDrawdowns(t *testing.T) {
	d := -0.05
	points := []model.EquityPoint{
		{Time: 0, Equity: 1.0},
		{Time: 1, Equity: 1.1, Drawdown: &d},
		{Time: 2, Equity: 1.0},
	}
	out := FillDrawdowns(points)
	if out[1] != -0.05 {
		t.Fatalf("server drawdown should win: got %v", out[1])
	}
	want := 1.0/1.1 - 1
	if math.Abs(out[2]-want) > 1e-12 {
		t.Fatalf("computed drawdown: got %v want %v", out[2], want)
	}
}
