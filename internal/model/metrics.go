package model

// MetricsSnapshot is the flat bag of server-computed scalar statistics
// for a run. Every field is optional; the R-suffixed fields come from
// /runs/{id}/metrics, the rest are legacy percentage-based fields other
// endpoints may still return.
type MetricsSnapshot struct {
	// Legacy fields.
	Expectancy     *float64 `json:"expectancy,omitempty"`
	Sharpe         *float64 `json:"sharpe,omitempty"`
	Volatility     *float64 `json:"volatility,omitempty"`
	TotalReturn    *float64 `json:"total_return,omitempty"`
	VolatilityDrag *float64 `json:"volatility_drag,omitempty"`
	WinRate        *float64 `json:"win_rate,omitempty"`
	MaxDrawdown    *float64 `json:"max_drawdown,omitempty"`

	// R-based run metrics.
	TotalTrades  *int     `json:"total_trades,omitempty"`
	Wins         *int     `json:"wins,omitempty"`
	Losses       *int     `json:"losses,omitempty"`
	TotalR       *float64 `json:"total_R,omitempty"`
	AvgR         *float64 `json:"avg_R,omitempty"`
	AvgWinR      *float64 `json:"avg_win_R,omitempty"`
	AvgLossR     *float64 `json:"avg_loss_R,omitempty"`
	ExpectancyR  *float64 `json:"expectancy_R,omitempty"`
	VolatilityR  *float64 `json:"volatility_R,omitempty"`
	KellyF       *float64 `json:"kelly_f,omitempty"`
	LogGrowth    *float64 `json:"log_growth,omitempty"`
	MaxDrawdownR *float64 `json:"max_drawdown_R,omitempty"`
}

// EquityPoint is one step of the per-run equity series. Time is the
// positional index; ordering is load-bearing for chart rendering (index =
// x-axis position). Drawdown and LogReturn are nil when the server did
// not supply the matching column.
type EquityPoint struct {
	Time      int      `json:"time"`
	Equity    float64  `json:"equity"`
	Drawdown  *float64 `json:"drawdown,omitempty"`
	LogReturn *float64 `json:"log_return,omitempty"`
}
