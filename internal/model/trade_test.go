package model

import (
	"math"
	"testing"
)

func TestComputeReturnsLong(t *testing.T) {
	raw, logR, err := ComputeReturns(100, 110, DirectionLong)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(raw-0.10) > 1e-12 {
		t.Fatalf("raw return: got %v want 0.10", raw)
	}
	if math.Abs(logR-math.Log(1.10)) > 1e-12 {
		t.Fatalf("log return: got %v want %v", logR, math.Log(1.10))
	}
}

func TestComputeReturnsShort(t *testing.T) {
	raw, logR, err := ComputeReturns(100, 90, DirectionShort)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(raw-0.10) > 1e-12 {
		t.Fatalf("raw return: got %v want 0.10", raw)
	}
	if logR <= 0 {
		t.Fatalf("expected positive log return, got %v", logR)
	}
}

func TestComputeReturnsBadDirection(t *testing.T) {
	if _, _, err := ComputeReturns(100, 110, "sideways"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}

func TestValidateStopLoss(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		name      string
		direction string
		entry     float64
		stop      *float64
		wantErr   bool
	}{
		{"long stop below entry", DirectionLong, 100, f(95), false},
		{"long stop above entry", DirectionLong, 100, f(105), true},
		{"short stop above entry", DirectionShort, 100, f(105), false},
		{"short stop below entry", DirectionShort, 100, f(95), true},
		{"nil stop is valid", DirectionLong, 100, nil, false},
		{"long stop at entry", DirectionLong, 100, f(100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStopLoss(tt.direction, tt.entry, tt.stop)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got err=%v wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestREstimateFallback(t *testing.T) {
	r := 1.5
	withR := Trade{RMultiple: &r, LogReturn: 0.5}
	if withR.REstimate() != 1.5 {
		t.Fatalf("expected explicit r_multiple to win")
	}
	withoutR := Trade{LogReturn: math.Log(1.10)}
	if math.Abs(withoutR.REstimate()-0.10) > 1e-12 {
		t.Fatalf("fallback: got %v want 0.10", withoutR.REstimate())
	}
}

func TestParsePositiveAmount(t *testing.T) {
	if v, err := ParsePositiveAmount("101.25"); err != nil || v != 101.25 {
		t.Fatalf("got %v, %v", v, err)
	}
	if _, err := ParsePositiveAmount("-3"); err == nil {
		t.Fatal("expected error for negative amount")
	}
	if _, err := ParsePositiveAmount("abc"); err == nil {
		t.Fatal("expected error for garbage input")
	}
	if _, err := ParsePositiveAmount("0"); err == nil {
		t.Fatal("expected error for zero")
	}
}
