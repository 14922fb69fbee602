package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Trade directions.
const (
	DirectionLong  = "long"
	DirectionShort = "short"
)

// Timeframes the API accepts on a trade.
var Timeframes = []string{"H1", "H4", "D1"}

var (
	// ErrInvalidDirection is returned for a direction other than long/short.
	ErrInvalidDirection = errors.New("direction must be long or short")

	// ErrStopLossSide is returned when a stop loss sits on the wrong side
	// of the entry price for the trade direction.
	ErrStopLossSide = errors.New("stop loss on wrong side of entry")
)

// Trade is a single closed trade belonging to a run.
type Trade struct {
	ID         string   `json:"id"`
	RunID      string   `json:"run_id"`
	EntryPrice float64  `json:"entry_price"`
	ExitPrice  float64  `json:"exit_price"`
	StopLoss   *float64 `json:"stop_loss,omitempty"`
	Size       float64  `json:"size"`
	Direction  string   `json:"direction"`
	RawReturn  float64  `json:"raw_return"`
	LogReturn  float64  `json:"log_return"`
	RMultiple  *float64 `json:"r_multiple,omitempty"`
	IsWin      *bool    `json:"is_win,omitempty"`
	Timestamp  string   `json:"timestamp,omitempty"`
	Timeframe  string   `json:"timeframe,omitempty"`
	CreatedAt  string   `json:"created_at,omitempty"`
}

// REstimate returns the trade's R-multiple, falling back to
// exp(log_return)-1 when the server did not supply one.
func (t Trade) REstimate() float64 {
	if t.RMultiple != nil {
		return *t.RMultiple
	}
	return math.Exp(t.LogReturn) - 1
}

// TradePayload is the body for POST/PUT /trades/. stop_loss, timestamp
// and timeframe are optional.
type TradePayload struct {
	RunID      string   `json:"run_id,omitempty"`
	EntryPrice float64  `json:"entry_price" validate:"required,gt=0"`
	ExitPrice  float64  `json:"exit_price" validate:"required,gt=0"`
	StopLoss   *float64 `json:"stop_loss,omitempty" validate:"omitempty,gt=0"`
	Size       float64  `json:"size" validate:"required,gt=0"`
	Direction  string   `json:"direction" validate:"required,oneof=long short"`
	Timestamp  string   `json:"timestamp,omitempty"`
	Timeframe  string   `json:"timeframe,omitempty" validate:"omitempty,oneof=H1 H4 D1"`
}

// ComputeReturns derives raw and log returns from entry/exit prices for a
// direction. Used to patch a just-created trade locally before the
// authoritative server values arrive; it must match the server's own
// calculation or the divergence is visible until refresh.
func ComputeReturns(entry, exit float64, direction string) (raw, logReturn float64, err error) {
	if entry <= 0 {
		return 0, 0, fmt.Errorf("entry price must be positive, got %v", entry)
	}
	switch direction {
	case DirectionLong:
		raw = (exit - entry) / entry
	case DirectionShort:
		raw = (entry - exit) / entry
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	if raw <= -1 {
		return raw, math.Inf(-1), nil
	}
	return raw, math.Log(1 + raw), nil
}

// ValidateStopLoss checks the stop sits on the protective side of entry:
// below entry for longs, above entry for shorts. A nil stop is valid.
func ValidateStopLoss(direction string, entry float64, stop *float64) error {
	if stop == nil {
		return nil
	}
	switch direction {
	case DirectionLong:
		if *stop >= entry {
			return fmt.Errorf("%w: long stop %v must be below entry %v", ErrStopLossSide, *stop, entry)
		}
	case DirectionShort:
		if *stop <= entry {
			return fmt.Errorf("%w: short stop %v must be above entry %v", ErrStopLossSide, *stop, entry)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	return nil
}

// ParsePositiveAmount parses a user-entered price or size. Decimal parsing
// rejects the partial garbage strconv would accept via scientific notation
// typos and gives exact validation of user input before it hits the API.
func ParsePositiveAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("must be positive: %q", s)
	}
	return d.InexactFloat64(), nil
}
