package model

import "encoding/json"

// Variant is a parameterized, versioned instance of a System.
// Version numbers are assigned by the caller and validated server-side;
// the client does not enforce uniqueness or monotonicity.
type Variant struct {
	ID            string          `json:"id"`
	StrategyID    string          `json:"strategy_id"`
	Name          string          `json:"name"`
	DisplayName   string          `json:"display_name,omitempty"`
	Version       int             `json:"version"`
	ParameterHash string          `json:"parameter_hash,omitempty"`
	ParameterJSON json.RawMessage `json:"parameter_json,omitempty"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     string          `json:"created_at,omitempty"`
}

// Label returns the preferred human-readable name for display.
func (v Variant) Label() string {
	if v.DisplayName != "" {
		return v.DisplayName
	}
	return v.Name
}

// CreateVariant is the payload for POST /variants/.
type CreateVariant struct {
	StrategyID    string          `json:"strategy_id" validate:"required"`
	Name          string          `json:"name" validate:"required"`
	DisplayName   string          `json:"display_name" validate:"required"`
	VersionNumber int             `json:"version_number" validate:"required,gt=0"`
	ParameterHash string          `json:"parameter_hash" validate:"required"`
	ParameterJSON json.RawMessage `json:"parameter_json" validate:"required"`
	Description   string          `json:"description,omitempty"`
}

// VariantSummary is the server-computed cross-run aggregate for a variant.
type VariantSummary struct {
	VariantID        string   `json:"variant_id"`
	TotalRuns        int      `json:"total_runs"`
	MeanExpectancy   float64  `json:"mean_expectancy"`
	StdExpectancy    float64  `json:"std_expectancy"`
	MeanSharpe       float64  `json:"mean_sharpe"`
	StdSharpe        float64  `json:"std_sharpe"`
	MeanWinRate      float64  `json:"mean_win_rate"`
	MeanVolatility   float64  `json:"mean_volatility"`
	WorstMaxDD       float64  `json:"worst_max_dd"`
	TStat            *float64 `json:"t_stat,omitempty"`
	CILower          *float64 `json:"ci_lower,omitempty"`
	CIUpper          *float64 `json:"ci_upper,omitempty"`
	ProbEdgePositive *float64 `json:"prob_edge_positive,omitempty"`
}
