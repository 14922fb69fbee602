package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Amber renders s in AccentPrimary.
func Amber(s string) string {
	return lipgloss.NewStyle().Foreground(AccentPrimary).Render(s)
}

// Green renders s in StatusOK.
func Green(s string) string {
	return lipgloss.NewStyle().Foreground(StatusOK).Render(s)
}

// Red renders s in StatusError.
func Red(s string) string {
	return lipgloss.NewStyle().Foreground(StatusError).Render(s)
}

// Dim renders s in TextMuted.
func Dim(s string) string {
	return lipgloss.NewStyle().Foreground(TextMuted).Render(s)
}

// Bold renders s in bold TextPrimary.
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(TextPrimary).Render(s)
}

// Signed renders a numeric value green when positive, red when negative
// and muted at zero. Used for expectancy, returns and R-multiples.
func Signed(v float64, format string) string {
	s := fmt.Sprintf(format, v)
	switch {
	case v > 0:
		return Green("+" + s)
	case v < 0:
		return Red(s)
	default:
		return Dim(s)
	}
}

// brailleRamp maps normalized 0..7 buckets to braille bar characters.
var brailleRamp = []rune{'⡀', '⡄', '⡆', '⡇', '⣇', '⣧', '⣷', '⣿'}

// Sparkline produces a compact braille bar chart fitting width columns.
// Non-finite values clamp to the observed range.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	sampled := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := i * len(values) / width
		if idx >= len(values) {
			idx = len(values) - 1
		}
		sampled[i] = values[idx]
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range sampled {
		if !isFinite(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		return ""
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	b.Grow(width * 4)
	for _, v := range sampled {
		if !isFinite(v) {
			v = lo
		}
		norm := (v - lo) / span
		bucket := int(math.Round(norm * float64(len(brailleRamp)-1)))
		if bucket < 0 {
			bucket = 0
		}
		if bucket >= len(brailleRamp) {
			bucket = len(brailleRamp) - 1
		}
		b.WriteRune(brailleRamp[bucket])
	}

	return lipgloss.NewStyle().Foreground(AccentPrimary).Render(b.String())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// TruncateWithEllipsis shortens s to max runes, appending "..." when
// truncation occurs.
func TruncateWithEllipsis(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
