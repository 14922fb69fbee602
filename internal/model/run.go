package model

// Run statuses. The status field is open-ended server-side; these are the
// values this client acts on. Status transitions are backend-authoritative:
// the only transition exposed here is open -> finished via a write call.
const (
	RunStatusOpen     = "open"
	RunStatusFinished = "finished"
)

// Run types accepted by the API.
const (
	RunTypeBacktest   = "backtest"
	RunTypeForward    = "forward"
	RunTypeMonteCarlo = "montecarlo"
)

// Run is one execution of a Variant.
type Run struct {
	ID             string  `json:"id"`
	VariantID      string  `json:"variant_id"`
	Status         string  `json:"status"`
	RunType        string  `json:"run_type"`
	InitialCapital float64 `json:"initial_capital"`
	TradeLimit     *int    `json:"trade_limit,omitempty"`
	DisplayName    string  `json:"display_name,omitempty"`
	Description    string  `json:"description,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// Label returns the preferred human-readable name for display.
func (r Run) Label() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.ID
}

// IsOpen reports whether the run still accepts trades.
func (r Run) IsOpen() bool {
	return r.Status == RunStatusOpen
}

// CreateRun is the payload for POST /runs/.
type CreateRun struct {
	VariantID      string  `json:"variant_id" validate:"required"`
	DisplayName    string  `json:"display_name" validate:"required"`
	InitialCapital float64 `json:"initial_capital" validate:"required,gt=0"`
	RunType        string  `json:"run_type" validate:"required,oneof=backtest forward montecarlo"`
	TradeLimit     *int    `json:"trade_limit,omitempty" validate:"omitempty,gt=0"`
	Description    string  `json:"description,omitempty"`
}
