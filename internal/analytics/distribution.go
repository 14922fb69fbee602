package analytics

import (
	"math"
	"sort"

	"github.com/x88a9/edge-lab/internal/model"
)

// HistogramBins is the fixed bin count for the R-multiple histogram.
const HistogramBins = 20

// HistogramBin is one equal-width bucket of the R-multiple sample.
type HistogramBin struct {
	Low   float64
	High  float64
	Count int
}

// RMultiples extracts the R-multiple sample from trades, using the
// explicit r_multiple where present and exp(log_return)-1 otherwise.
func RMultiples(trades []model.Trade) []float64 {
	out := make([]float64, len(trades))
	for i, t := range trades {
		out[i] = t.REstimate()
	}
	return out
}

// Histogram buckets the sample into HistogramBins equal-width bins over
// [min, max]. Boundary and out-of-range values clamp into bin 0 or the
// last bin, so counts always sum to len(sample).
func Histogram(sample []float64) []HistogramBin {
	if len(sample) == 0 {
		return nil
	}
	min, max := sample[0], sample[0]
	for _, v := range sample {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	step := (max - min) / HistogramBins
	bins := make([]HistogramBin, HistogramBins)
	for i := range bins {
		bins[i].Low = min + float64(i)*step
		bins[i].High = min + float64(i+1)*step
	}
	bins[HistogramBins-1].High = max
	for _, v := range sample {
		idx := 0
		if step > 0 {
			idx = int(math.Floor((v - min) / step))
		}
		if idx < 0 {
			idx = 0
		}
		if idx > HistogramBins-1 {
			idx = HistogramBins - 1
		}
		bins[idx].Count++
	}
	return bins
}

// Percentile returns the nearest-rank percentile: the sample value at
// sorted index floor(p*(n-1)). Percentile(s, 0) is the minimum and
// Percentile(s, 1) the maximum. The input is not modified.
func Percentile(sample []float64, p float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)
	idx := int(math.Floor(p * float64(len(sorted)-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(sorted)-1 {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Quartiles summarizes the sample for box rendering.
type Quartiles struct {
	Min    float64
	P5     float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// SampleQuartiles computes the box-plot quartiles with nearest-rank
// percentiles.
func SampleQuartiles(sample []float64) Quartiles {
	return Quartiles{
		Min:    Percentile(sample, 0),
		P5:     Percentile(sample, 0.05),
		Q1:     Percentile(sample, 0.25),
		Median: Percentile(sample, 0.50),
		Q3:     Percentile(sample, 0.75),
		Max:    Percentile(sample, 1),
	}
}

// Skewness computes the third standardized moment (population form).
// Zero for an empty or constant sample.
func Skewness(sample []float64) float64 {
	n := float64(len(sample))
	if n == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range sample {
		mean += v
	}
	mean /= n
	m2, m3 := 0.0, 0.0
	for _, v := range sample {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= n
	m3 /= n
	sd := math.Sqrt(m2)
	if sd == 0 {
		return 0
	}
	return m3 / (sd * sd * sd)
}
