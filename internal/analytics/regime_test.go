package analytics

import (
	"errors"
	"math"
	"testing"

	"github.com/x88a9/edge-lab/internal/model"
)

func tradeWithR(r float64) model.Trade {
	return model.Trade{RMultiple: &r}
}

func TestAggregateRegimes(t *testing.T) {
	trades := []model.Trade{
		tradeWithR(1.0), tradeWithR(2.0), // regime 0
		tradeWithR(-1.0), tradeWithR(-1.0), // regime 1
	}
	labels := []int{0, 0, 1, 1}

	stats, err := AggregateRegimes(trades, labels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d regimes, want 2", len(stats))
	}
	if stats[0].Label != 0 || stats[0].Count != 2 {
		t.Fatalf("regime 0: %+v", stats[0])
	}
	if math.Abs(stats[0].Expectancy-1.5) > 1e-12 {
		t.Fatalf("regime 0 expectancy: got %v want 1.5", stats[0].Expectancy)
	}
	if math.Abs(stats[0].Volatility-0.5) > 1e-12 {
		t.Fatalf("regime 0 volatility: got %v want 0.5", stats[0].Volatility)
	}
	if stats[1].Expectancy != -1.0 || stats[1].Volatility != 0 {
		t.Fatalf("regime 1: %+v", stats[1])
	}
}

func TestAggregateRegimesLengthMismatch(t *testing.T) {
	_, err := AggregateRegimes([]model.Trade{tradeWithR(1)}, []int{0, 1})
	if !errors.Is(err, ErrRegimeMismatch) {
		t.Fatalf("expected ErrRegimeMismatch, got %v", err)
	}
}

func TestAggregateRegimesEmpty(t *testing.T) {
	stats, err := AggregateRegimes(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("got %d regimes, want 0", len(stats))
	}
}
