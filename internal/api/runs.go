package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/x88a9/edge-lab/internal/model"
)

// ListRuns returns every run across all variants.
func (c *Client) ListRuns(ctx context.Context) ([]model.Run, error) {
	var runs []model.Run
	err := c.get(ctx, "runs", "/runs/", nil, &runs)
	return runs, err
}

// GetRun fetches one run by id.
func (c *Client) GetRun(ctx context.Context, id string) (model.Run, error) {
	var run model.Run
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s", id), nil, &run)
	return run, err
}

// CreateRun opens a new run against a variant.
func (c *Client) CreateRun(ctx context.Context, payload model.CreateRun) (model.Run, error) {
	var run model.Run
	if err := model.ValidatePayload(payload); err != nil {
		return run, err
	}
	err := c.post(ctx, "runs", "/runs/", payload, &run)
	return run, err
}

// FinishRun marks a run finished. This is the only status transition
// the API exposes; there is no reopen.
func (c *Client) FinishRun(ctx context.Context, id string) (model.Run, error) {
	var run model.Run
	body := map[string]string{"status": model.RunStatusFinished}
	err := c.put(ctx, "runs", fmt.Sprintf("/runs/%s", id), body, &run)
	return run, err
}

// RunTrades returns a run's trades in entry order.
func (c *Client) RunTrades(ctx context.Context, runID string) ([]model.Trade, error) {
	var trades []model.Trade
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/trades", runID), nil, &trades)
	return trades, err
}

// RunMetrics returns the server-computed scalar statistics for a run.
func (c *Client) RunMetrics(ctx context.Context, runID string) (model.MetricsSnapshot, error) {
	var snapshot model.MetricsSnapshot
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/metrics", runID), nil, &snapshot)
	return snapshot, err
}

// RunEquity returns the run's equity series as ordered points. The
// server speaks two shapes for this endpoint, an array of point objects
// and a columnar object of parallel arrays; both normalize to the same
// positional-index series.
func (c *Client) RunEquity(ctx context.Context, runID string) ([]model.EquityPoint, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/equity", runID), nil, &raw); err != nil {
		return nil, err
	}
	return normalizeEquity(raw)
}

// RunMonteCarlo returns the server-side Monte Carlo digest for a run.
func (c *Client) RunMonteCarlo(ctx context.Context, runID string) (model.MonteCarloSummary, error) {
	var summary model.MonteCarloSummary
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/monte-carlo", runID), nil, &summary)
	return summary, err
}

// RunWalkForward returns the run's walk-forward windows. Windows with
// non-finite statistics are passed through; filtering is presentation
// logic, not transport logic.
func (c *Client) RunWalkForward(ctx context.Context, runID string) ([]model.WalkForwardWindow, error) {
	var windows []model.WalkForwardWindow
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/walk-forward", runID), nil, &windows)
	return windows, err
}

// RunRegimeDetection returns per-trade regime labels and centroids.
func (c *Client) RunRegimeDetection(ctx context.Context, runID string) (model.RegimeDetection, error) {
	var regime model.RegimeDetection
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/regime-detection", runID), nil, &regime)
	return regime, err
}

// RunKellySimulation returns the full Kelly fraction sweep for a run.
func (c *Client) RunKellySimulation(ctx context.Context, runID string) (model.KellySimulation, error) {
	var kelly model.KellySimulation
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/kelly-simulation", runID), nil, &kelly)
	return kelly, err
}

// RunRiskOfRuin returns the ruin simulation digest. Zero-valued params
// are omitted so the server applies its own defaults.
func (c *Client) RunRiskOfRuin(ctx context.Context, runID string, params model.RiskOfRuinParams) (model.RiskOfRuinSummary, error) {
	query := url.Values{}
	if params.PositionFraction > 0 {
		query.Set("position_fraction", strconv.FormatFloat(params.PositionFraction, 'f', -1, 64))
	}
	if params.RuinThreshold > 0 {
		query.Set("ruin_threshold", strconv.FormatFloat(params.RuinThreshold, 'f', -1, 64))
	}
	if params.Simulations > 0 {
		query.Set("simulations", strconv.Itoa(params.Simulations))
	}

	var summary model.RiskOfRuinSummary
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/risk-of-ruin", runID), query, &summary)
	return summary, err
}

// GetAnalytics returns the run's versioned analytics snapshot.
// A 404 maps to ErrNotComputed: the snapshot simply does not exist yet
// and callers should offer a compute action.
func (c *Client) GetAnalytics(ctx context.Context, runID string) (model.AnalyticsSnapshot, error) {
	var snapshot model.AnalyticsSnapshot
	err := c.get(ctx, "runs", fmt.Sprintf("/runs/%s/analytics", runID), nil, &snapshot)
	if errors.Is(err, ErrNotFound) {
		return snapshot, fmt.Errorf("%w: run %s", ErrNotComputed, runID)
	}
	return snapshot, err
}

// ComputeAnalytics asks the server to (re)build the analytics snapshot
// for a run. The computation is asynchronous; poll GetAnalytics for the
// result.
func (c *Client) ComputeAnalytics(ctx context.Context, runID string) error {
	return c.post(ctx, "runs", fmt.Sprintf("/runs/%s/analytics/compute", runID), nil, nil)
}

// equityPointWire is the array-of-points shape of the equity endpoint.
// The server's time field is sometimes a string and sometimes a number,
// so it is dropped entirely; position in the array is the ordering.
type equityPointWire struct {
	Equity    float64  `json:"equity"`
	Drawdown  *float64 `json:"drawdown"`
	LogReturn *float64 `json:"log_return"`
}

// columnarEquity is the parallel-array shape of the equity endpoint.
type columnarEquity struct {
	Equity    []float64 `json:"equity"`
	Drawdown  []float64 `json:"drawdown"`
	LogReturn []float64 `json:"log_return"`
}

// normalizeEquity converts either wire shape into an ordered point
// series indexed by position. Columnar drawdown and log return values
// attach per index; points past the end of a shorter column are left
// unset.
func normalizeEquity(raw json.RawMessage) ([]model.EquityPoint, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var wire []equityPointWire
	if err := json.Unmarshal(raw, &wire); err == nil {
		points := make([]model.EquityPoint, len(wire))
		for i, p := range wire {
			points[i] = model.EquityPoint{
				Time:      i,
				Equity:    p.Equity,
				Drawdown:  p.Drawdown,
				LogReturn: p.LogReturn,
			}
		}
		return points, nil
	}

	var cols columnarEquity
	if err := json.Unmarshal(raw, &cols); err != nil {
		return nil, fmt.Errorf("unrecognized equity response: %w", err)
	}

	points := make([]model.EquityPoint, len(cols.Equity))
	for i, eq := range cols.Equity {
		points[i] = model.EquityPoint{Time: i, Equity: eq}
		if i < len(cols.Drawdown) {
			dd := cols.Drawdown[i]
			points[i].Drawdown = &dd
		}
		if i < len(cols.LogReturn) {
			lr := cols.LogReturn[i]
			points[i].LogReturn = &lr
		}
	}
	return points, nil
}
