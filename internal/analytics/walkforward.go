package analytics

import (
	"math"

	"github.com/x88a9/edge-lab/internal/model"
)

// Stability classifications for a walk-forward window set.
const (
	StabilityStable    = "Stable"
	StabilityDegrading = "Degrading"
	StabilityImproving = "Improving"
)

// FilterFinite drops windows where any of the four statistics is NaN or
// infinite. An unfiltered NaN silently breaks chart path geometry, so
// this runs before any rendering.
func FilterFinite(windows []model.WalkForwardWindow) []model.WalkForwardWindow {
	out := make([]model.WalkForwardWindow, 0, len(windows))
	for _, w := range windows {
		if isFinite(w.TrainExpectancy) && isFinite(w.TestExpectancy) &&
			isFinite(w.TrainSharpe) && isFinite(w.TestSharpe) {
			out = append(out, w)
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DegradingCount counts windows whose out-of-sample expectancy fell below
// the in-sample expectancy.
func DegradingCount(windows []model.WalkForwardWindow) int {
	n := 0
	for _, w := range windows {
		if w.TestExpectancy < w.TrainExpectancy {
			n++
		}
	}
	return n
}

// ClassifyStability labels a window set: Stable when no window degrades,
// Degrading when more than half do, Improving otherwise.
func ClassifyStability(windows []model.WalkForwardWindow) string {
	total := len(windows)
	if total == 0 {
		return StabilityStable
	}
	degrading := DegradingCount(windows)
	switch {
	case degrading == 0:
		return StabilityStable
	case float64(degrading) > float64(total)/2:
		return StabilityDegrading
	default:
		return StabilityImproving
	}
}

// VolatilityProxy approximates per-window volatility as |expectancy /
// sharpe|, the only estimate available from the window statistics alone.
func VolatilityProxy(expectancy, sharpe float64) float64 {
	if sharpe == 0 {
		return 0
	}
	return math.Abs(expectancy / sharpe)
}
