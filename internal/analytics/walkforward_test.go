package analytics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/x88a9/edge-lab/internal/model"
)

func window(trainExp, testExp, trainSharpe, testSharpe float64) model.WalkForwardWindow {
	return model.WalkForwardWindow{
		TrainExpectancy: trainExp,
		TestExpectancy:  testExp,
		TrainSharpe:     trainSharpe,
		TestSharpe:      testSharpe,
	}
}

func TestFilterFinite(t *testing.T) {
	windows := []model.WalkForwardWindow{
		window(0.2, 0.1, 1.2, 0.9),
		window(math.NaN(), 0.1, 1.2, 0.9),
		window(0.2, math.Inf(1), 1.2, 0.9),
		window(0.3, 0.2, 1.0, 1.1),
		window(0.2, 0.1, 1.2, math.Inf(-1)),
	}
	filtered := FilterFinite(windows)
	if len(filtered) != 2 {
		t.Fatalf("got %d windows, want 2", len(filtered))
	}
	if filtered[0].TrainExpectancy != 0.2 || filtered[1].TrainExpectancy != 0.3 {
		t.Fatalf("wrong windows retained: %+v", filtered)
	}
}

func TestFilterFiniteNullStatistic(t *testing.T) {
	raw := `[
		{"train_expectancy":0.2,"test_expectancy":0.1,"train_sharpe":null,"test_sharpe":0.9},
		{"train_expectancy":0.3,"test_expectancy":0.2,"train_sharpe":1.0,"test_sharpe":1.1}
	]`
	var windows []model.WalkForwardWindow
	if err := json.Unmarshal([]byte(raw), &windows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !math.IsNaN(windows[0].TrainSharpe) {
		t.Fatalf("null should decode as NaN, got %v", windows[0].TrainSharpe)
	}

	filtered := FilterFinite(windows)
	if len(filtered) != 1 {
		t.Fatalf("got %d windows, want 1", len(filtered))
	}
	if filtered[0].TrainExpectancy != 0.3 {
		t.Fatalf("wrong window retained: %+v", filtered)
	}
}

func TestClassifyStability(t *testing.T) {
	improving := window(0.1, 0.2, 1, 1)
	degrading := window(0.2, 0.1, 1, 1)

	tests := []struct {
		name    string
		windows []model.WalkForwardWindow
		want    string
	}{
		{"no degrading windows", []model.WalkForwardWindow{improving, improving, improving, improving}, StabilityStable},
		{"three of four degrading", []model.WalkForwardWindow{degrading, degrading, degrading, improving}, StabilityDegrading},
		{"two of four degrading", []model.WalkForwardWindow{degrading, degrading, improving, improving}, StabilityImproving},
		{"empty set", nil, StabilityStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStability(tt.windows); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestVolatilityProxy(t *testing.T) {
	if got := VolatilityProxy(0.2, 0); got != 0 {
		t.Fatalf("zero sharpe: got %v", got)
	}
	if got := VolatilityProxy(-0.2, 2); got != 0.1 {
		t.Fatalf("got %v want 0.1", got)
	}
}
