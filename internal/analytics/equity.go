// Package analytics holds the presentation-side math the console computes
// locally: drawdown series, return distributions, walk-forward stability
// and regime aggregation. Everything heavier (simulation, optimization,
// clustering) is server-computed and only rendered here.
package analytics

import (
	"math"

	"github.com/x88a9/edge-lab/internal/model"
)

// logFloor is the positive floor applied before log-scaling equity so
// zero or negative values cannot produce a singularity.
const logFloor = 1e-9

// DrawdownSeries computes drawdown[i] = equity[i]/max(equity[0..i]) - 1
// with a single prefix-maximum pass. Every element is <= 0.
func DrawdownSeries(equity []float64) []float64 {
	if len(equity) == 0 {
		return nil
	}
	dd := make([]float64, len(equity))
	peak := equity[0]
	for i, e := range equity {
		if e > peak {
			peak = e
		}
		if peak == 0 {
			dd[i] = 0
			continue
		}
		dd[i] = e/peak - 1
	}
	return dd
}

// MaxDrawdownIndex returns the index of the deepest drawdown, -1 for an
// empty series.
func MaxDrawdownIndex(drawdown []float64) int {
	idx := -1
	worst := math.Inf(1)
	for i, d := range drawdown {
		if d < worst {
			worst = d
			idx = i
		}
	}
	return idx
}

// LogScale maps equity values through the natural log, flooring at a
// small positive value so the transform is total.
func LogScale(equity []float64) []float64 {
	out := make([]float64, len(equity))
	for i, e := range equity {
		if e < logFloor {
			e = logFloor
		}
		out[i] = math.Log(e)
	}
	return out
}

// EquityValues extracts the equity column from a point series.
func EquityValues(points []model.EquityPoint) []float64 {
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Equity
	}
	return vals
}

// FillDrawdowns returns the drawdown column of a point series, computing
// any missing entries from the equity column so charts never see holes.
func FillDrawdowns(points []model.EquityPoint) []float64 {
	computed := DrawdownSeries(EquityValues(points))
	out := make([]float64, len(points))
	for i, p := range points {
		if p.Drawdown != nil {
			out[i] = *p.Drawdown
			continue
		}
		out[i] = computed[i]
	}
	return out
}
