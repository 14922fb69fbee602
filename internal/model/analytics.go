package model

import (
	"encoding/json"
	"math"
)

// MonteCarloSummary is the server-computed Monte Carlo digest for a run.
// No simulation happens client-side.
type MonteCarloSummary struct {
	MeanFinalReturn   float64 `json:"mean_final_return"`
	MedianFinalReturn float64 `json:"median_final_return"`
	P5FinalReturn     float64 `json:"p5_final_return"`
	P95FinalReturn    float64 `json:"p95_final_return"`
	MeanMaxDD         float64 `json:"mean_max_dd"`
	WorstCaseDD       float64 `json:"worst_case_dd"`
	P95DD             float64 `json:"p95_dd"`
}

// RiskOfRuinSummary is the server-computed ruin simulation digest.
type RiskOfRuinSummary struct {
	RuinProbability    float64 `json:"ruin_probability"`
	MeanFinalCapital   float64 `json:"mean_final_capital"`
	MedianFinalCapital float64 `json:"median_final_capital"`
	MeanMaxDrawdown    float64 `json:"mean_max_drawdown"`
	WorstCaseDrawdown  float64 `json:"worst_case_drawdown"`
}

// RiskOfRuinParams are the optional query parameters for
// GET /runs/{id}/risk-of-ruin. Zero values are omitted.
type RiskOfRuinParams struct {
	PositionFraction float64
	RuinThreshold    float64
	Simulations      int
}

// KellyPoint is one evaluated position-sizing fraction in a Kelly sweep.
type KellyPoint struct {
	Fraction         float64 `json:"fraction"`
	MeanFinalCapital float64 `json:"mean_final_capital"`
	RuinProbability  float64 `json:"ruin_probability"`
	MeanMaxDrawdown  float64 `json:"mean_max_drawdown"`
}

// KellySimulation is the full server-side fraction sweep. GrowthOptimal
// and SafeFraction are flags computed server-side; the client only
// renders them.
type KellySimulation struct {
	AllResults    []KellyPoint `json:"all_results"`
	GrowthOptimal *KellyPoint  `json:"growth_optimal"`
	SafeFraction  *KellyPoint  `json:"safe_fraction"`
}

// WalkForwardWindow is one train/test split's out-of-sample statistics.
// The server emits null for a statistic it could not compute; null
// decodes to NaN so downstream finite filtering treats absent and
// non-finite values the same way.
type WalkForwardWindow struct {
	TrainExpectancy float64 `json:"train_expectancy"`
	TestExpectancy  float64 `json:"test_expectancy"`
	TrainSharpe     float64 `json:"train_sharpe"`
	TestSharpe      float64 `json:"test_sharpe"`
}

// walkForwardWire mirrors WalkForwardWindow with pointers so null stays
// distinguishable from zero.
type walkForwardWire struct {
	TrainExpectancy *float64 `json:"train_expectancy"`
	TestExpectancy  *float64 `json:"test_expectancy"`
	TrainSharpe     *float64 `json:"train_sharpe"`
	TestSharpe      *float64 `json:"test_sharpe"`
}

func (w *WalkForwardWindow) UnmarshalJSON(data []byte) error {
	var wire walkForwardWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	w.TrainExpectancy = orNaN(wire.TrainExpectancy)
	w.TestExpectancy = orNaN(wire.TestExpectancy)
	w.TrainSharpe = orNaN(wire.TrainSharpe)
	w.TestSharpe = orNaN(wire.TestSharpe)
	return nil
}

// MarshalJSON writes non-finite values back as null; encoding/json
// rejects NaN and infinities.
func (w WalkForwardWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(walkForwardWire{
		TrainExpectancy: orNil(w.TrainExpectancy),
		TestExpectancy:  orNil(w.TestExpectancy),
		TrainSharpe:     orNil(w.TrainSharpe),
		TestSharpe:      orNil(w.TestSharpe),
	})
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func orNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// RegimeDetection holds per-timestep clustering labels and the cluster
// centroids. Labels align positionally with the run's trades.
type RegimeDetection struct {
	Labels    []int       `json:"labels"`
	Centroids [][]float64 `json:"centroids"`
}

// AnalyticsSnapshot is the versioned, per-run analytics bundle. Absent
// (404) until a compute action has been triggered; IsDirty flags that
// trades changed since the last computation.
type AnalyticsSnapshot struct {
	RunID       string              `json:"run_id"`
	Version     int                 `json:"version"`
	IsDirty     bool                `json:"is_dirty"`
	ComputedAt  string              `json:"computed_at,omitempty"`
	Metrics     *MetricsSnapshot    `json:"metrics,omitempty"`
	Equity      []EquityPoint       `json:"equity,omitempty"`
	MonteCarlo  *MonteCarloSummary  `json:"monte_carlo,omitempty"`
	RiskOfRuin  *RiskOfRuinSummary  `json:"risk_of_ruin,omitempty"`
	Kelly       *KellySimulation    `json:"kelly_simulation,omitempty"`
	WalkForward []WalkForwardWindow `json:"walk_forward,omitempty"`
	Regime      *RegimeDetection    `json:"regime_detection,omitempty"`
}
