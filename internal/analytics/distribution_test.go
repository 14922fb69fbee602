package analytics

import (
	"math"
	"math/rand"
	"testing"
)

func TestHistogramCountsSumToSampleSize(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sample := make([]float64, 137)
	for i := range sample {
		sample[i] = rng.NormFloat64()
	}
	bins := Histogram(sample)
	if len(bins) != HistogramBins {
		t.Fatalf("expected %d bins, got %d", HistogramBins, len(bins))
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(sample) {
		t.Fatalf("bin counts sum to %d, want %d", total, len(sample))
	}
}

func TestHistogramBoundaryClamping(t *testing.T) {
	// max lands exactly on the upper edge of the last bin.
	sample := []float64{0, 1, 2, 3, 20}
	bins := Histogram(sample)
	if bins[HistogramBins-1].Count != 1 {
		t.Fatalf("max value must clamp into the last bin, got %d", bins[HistogramBins-1].Count)
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(sample) {
		t.Fatalf("counts sum to %d, want %d", total, len(sample))
	}
}

func TestHistogramConstantSample(t *testing.T) {
	bins := Histogram([]float64{2, 2, 2})
	if bins[0].Count != 3 {
		t.Fatalf("zero-width sample must land in bin 0, got %d", bins[0].Count)
	}
}

func TestPercentileNearestRank(t *testing.T) {
	sample := []float64{5, 1, 4, 2, 3}
	if got := Percentile(sample, 0); got != 1 {
		t.Fatalf("p0: got %v want 1", got)
	}
	if got := Percentile(sample, 1); got != 5 {
		t.Fatalf("p100: got %v want 5", got)
	}
	// floor(0.5 * 4) = 2 -> sorted[2] = 3
	if got := Percentile(sample, 0.5); got != 3 {
		t.Fatalf("median: got %v want 3", got)
	}
	// floor(0.25 * 4) = 1 -> sorted[1] = 2
	if got := Percentile(sample, 0.25); got != 2 {
		t.Fatalf("q1: got %v want 2", got)
	}
	// input must stay unsorted
	if sample[0] != 5 {
		t.Fatalf("percentile must not mutate its input")
	}
}

func TestSkewness(t *testing.T) {
	if got := Skewness([]float64{1, 1, 1}); got != 0 {
		t.Fatalf("constant sample skew: got %v", got)
	}
	// Right-skewed sample has positive skew.
	if got := Skewness([]float64{1, 1, 1, 1, 10}); got <= 0 {
		t.Fatalf("expected positive skew, got %v", got)
	}
	symmetric := []float64{-2, -1, 0, 1, 2}
	if got := Skewness(symmetric); math.Abs(got) > 1e-12 {
		t.Fatalf("symmetric sample skew: got %v", got)
	}
}
