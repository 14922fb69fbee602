package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/x88a9/edge-lab/internal/model"
)

// ErrRegimeMismatch is returned when the regime label series does not
// line up one-to-one with the trade series. The join between them is
// purely positional (label i belongs to trade i), so a length mismatch
// would silently misalign every following trade if it were tolerated.
var ErrRegimeMismatch = errors.New("regime label count does not match trade count")

// RegimeStats aggregates the trades assigned to one regime label.
type RegimeStats struct {
	Label      int
	Count      int
	Expectancy float64 // mean R-multiple
	Volatility float64 // stdev of R-multiple (population)
}

// AggregateRegimes joins labels to trades by position and summarizes each
// regime. Results are ordered by label.
func AggregateRegimes(trades []model.Trade, labels []int) ([]RegimeStats, error) {
	if len(labels) != len(trades) {
		return nil, fmt.Errorf("%w: %d labels, %d trades", ErrRegimeMismatch, len(labels), len(trades))
	}
	byLabel := make(map[int][]float64)
	for i, t := range trades {
		byLabel[labels[i]] = append(byLabel[labels[i]], t.REstimate())
	}
	keys := make([]int, 0, len(byLabel))
	for k := range byLabel {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]RegimeStats, 0, len(keys))
	for _, k := range keys {
		rs := byLabel[k]
		mean := 0.0
		for _, r := range rs {
			mean += r
		}
		mean /= float64(len(rs))
		variance := 0.0
		for _, r := range rs {
			d := r - mean
			variance += d * d
		}
		variance /= float64(len(rs))
		out = append(out, RegimeStats{
			Label:      k,
			Count:      len(rs),
			Expectancy: mean,
			Volatility: math.Sqrt(variance),
		})
	}
	return out, nil
}
