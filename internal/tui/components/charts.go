package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/analytics"
	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// NoData renders the standard empty-panel fallback.
func NoData(reason string) string {
	if reason == "" {
		reason = "no data"
	}
	return styles.Dim("  ◌ " + reason)
}

// LineChart plots a series as a block-column chart. Values resample to
// width columns and quantize to height rows, filled from the bottom.
// Non-finite values render as gaps.
func LineChart(values []float64, width, height int, color lipgloss.Color) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return NoData("")
	}

	sampled := resample(values, width)
	lo, hi, ok := finiteRange(sampled)
	if !ok {
		return NoData("series is not finite")
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	// levels[i] is the filled cell count for column i, 1..height.
	levels := make([]int, width)
	for i, v := range sampled {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			levels[i] = 0
			continue
		}
		l := int(math.Round((v-lo)/span*float64(height-1))) + 1
		if l < 1 {
			l = 1
		}
		if l > height {
			l = height
		}
		levels[i] = l
	}

	style := lipgloss.NewStyle().Foreground(color)
	var b strings.Builder
	for row := height; row >= 1; row-- {
		var line strings.Builder
		for _, l := range levels {
			switch {
			case l >= row && l > 0:
				line.WriteRune('█')
			default:
				line.WriteRune(' ')
			}
		}
		b.WriteString(style.Render(line.String()))
		if row > 1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// EquityPanel renders the equity curve with its max-drawdown callout and
// the drawdown sparkline underneath.
func EquityPanel(equity, drawdown []float64, width, height int, logScale bool) string {
	if len(equity) == 0 {
		return NoData("no equity series")
	}

	series := equity
	scaleLabel := "linear"
	if logScale {
		series = analytics.LogScale(equity)
		scaleLabel = "log"
	}

	chart := LineChart(series, width, height, styles.AccentSecondary)

	var lines []string
	lines = append(lines, styles.Title.Render("Equity")+styles.Dim(" ("+scaleLabel+")"))
	lines = append(lines, chart)

	if len(drawdown) > 0 {
		worst := analytics.MaxDrawdownIndex(drawdown)
		lines = append(lines, "")
		label := styles.Label.Render("Drawdown ")
		if worst >= 0 {
			label += styles.LossText.Render(fmt.Sprintf("%.1f%% max", drawdown[worst]*100))
		}
		lines = append(lines, label)
		lines = append(lines, styles.Sparkline(negate(drawdown), width))
	}

	return strings.Join(lines, "\n")
}

// HistogramPanel renders the R-multiple distribution as horizontal bars
// with the quartile line underneath.
func HistogramPanel(sample []float64, width int) string {
	if len(sample) == 0 {
		return NoData("no trades")
	}

	bins := analytics.Histogram(sample)
	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	if maxCount == 0 {
		return NoData("no trades")
	}

	barWidth := width - 22
	if barWidth < 8 {
		barWidth = 8
	}

	var lines []string
	lines = append(lines, styles.Title.Render("R-multiple distribution"))
	for _, bin := range bins {
		if bin.Count == 0 {
			continue
		}
		n := bin.Count * barWidth / maxCount
		if n < 1 {
			n = 1
		}
		color := styles.Profit
		if bin.High <= 0 {
			color = styles.Loss
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▇", n))
		label := fmt.Sprintf("%7.2f→%-7.2f", bin.Low, bin.High)
		lines = append(lines, styles.Dim(label)+" "+bar+" "+styles.Subtitle.Render(fmt.Sprintf("%d", bin.Count)))
	}

	q := analytics.SampleQuartiles(sample)
	skew := analytics.Skewness(sample)
	lines = append(lines, "")
	lines = append(lines, styles.Label.Render("p5 ")+styles.Signed(q.P5, "%.2f")+
		styles.Label.Render("  q1 ")+styles.Signed(q.Q1, "%.2f")+
		styles.Label.Render("  med ")+styles.Signed(q.Median, "%.2f")+
		styles.Label.Render("  q3 ")+styles.Signed(q.Q3, "%.2f")+
		styles.Label.Render("  skew ")+styles.Signed(skew, "%.2f"))

	return strings.Join(lines, "\n")
}

// RegimePanel renders the per-regime aggregate table plus a colored
// label strip showing the regime sequence.
func RegimePanel(stats []analytics.RegimeStats, labels []int, width int) string {
	if len(stats) == 0 {
		return NoData("no regimes detected")
	}

	var lines []string
	lines = append(lines, styles.Title.Render("Regimes"))

	for _, s := range stats {
		swatch := lipgloss.NewStyle().Foreground(regimeColor(s.Label)).Render("■")
		lines = append(lines, fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
			swatch,
			styles.Value.Render(fmt.Sprintf("regime %d", s.Label)),
			styles.Label.Render("trades"),
			styles.Value.Render(fmt.Sprintf("%d", s.Count)),
			styles.Label.Render("expectancy"),
			styles.Signed(s.Expectancy, "%.3f"),
			styles.Label.Render("vol"),
			styles.Value.Render(fmt.Sprintf("%.3f", s.Volatility)),
		))
	}

	if len(labels) > 0 {
		strip := regimeStrip(labels, width)
		lines = append(lines, "")
		lines = append(lines, strip)
	}

	return strings.Join(lines, "\n")
}

// regimeStrip compresses the label sequence into a one-line colored strip.
func regimeStrip(labels []int, width int) string {
	if width <= 0 {
		width = 60
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := i * len(labels) / width
		if idx >= len(labels) {
			idx = len(labels) - 1
		}
		b.WriteString(lipgloss.NewStyle().Foreground(regimeColor(labels[idx])).Render("▮"))
	}
	return b.String()
}

var regimePalette = []lipgloss.Color{
	styles.AccentPrimary,
	styles.AccentSecondary,
	styles.AccentTertiary,
	styles.StatusInfo,
	styles.StatusWarn,
	styles.StatusError,
}

func regimeColor(label int) lipgloss.Color {
	if label < 0 {
		return styles.TextMuted
	}
	return regimePalette[label%len(regimePalette)]
}

func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := i * len(values) / width
		if idx >= len(values) {
			idx = len(values) - 1
		}
		out[i] = values[idx]
	}
	return out
}

func finiteRange(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, lo <= hi
}

func negate(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = -v
	}
	return out
}
