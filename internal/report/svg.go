package report

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/x88a9/edge-lab/internal/analytics"
)

// svg chart geometry
const (
	chartWidth  = 720
	chartHeight = 220
	chartPad    = 10
)

// linePath builds an SVG polyline "points" attribute from a series.
// Non-finite values break the line into gaps by being skipped, which
// keeps the path geometry valid.
func linePath(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !finite(v) {
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

	stepX := float64(chartWidth-2*chartPad) / float64(maxInt(len(values)-1, 1))
	var b strings.Builder
	for i, v := range values {
		if !finite(v) {
			continue
		}
		x := chartPad + float64(i)*stepX
		y := chartHeight - chartPad - (v-lo)/span*float64(chartHeight-2*chartPad)
		fmt.Fprintf(&b, "%.1f,%.1f ", x, y)
	}
	return strings.TrimSpace(b.String())
}

// LineSVG renders a single-series line chart.
func LineSVG(values []float64, stroke string) template.HTML {
	points := linePath(values)
	if points == "" {
		return template.HTML(`<p class="nodata">no data</p>`)
	}
	svg := fmt.Sprintf(
		`<svg viewBox="0 0 %d %d" class="chart"><polyline fill="none" stroke="%s" stroke-width="2" points="%s"/></svg>`,
		chartWidth, chartHeight, stroke, points,
	)
	return template.HTML(svg)
}

// HistogramSVG renders the R-multiple distribution as vertical bars,
// losses red and wins green.
func HistogramSVG(bins []analytics.HistogramBin) template.HTML {
	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	if maxCount == 0 {
		return template.HTML(`<p class="nodata">no trades</p>`)
	}

	barWidth := float64(chartWidth-2*chartPad) / float64(len(bins))
	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %d %d" class="chart">`, chartWidth, chartHeight)
	for i, bin := range bins {
		h := float64(bin.Count) / float64(maxCount) * float64(chartHeight-2*chartPad)
		x := chartPad + float64(i)*barWidth
		y := float64(chartHeight-chartPad) - h
		fill := "var(--profit)"
		if bin.High <= 0 {
			fill = "var(--loss)"
		}
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%.2f to %.2f: %d</title></rect>`,
			x, y, barWidth-2, h, fill, bin.Low, bin.High, bin.Count)
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

// WalkForwardSVG renders paired train/test expectancy bars per window.
func WalkForwardSVG(train, test []float64) template.HTML {
	if len(train) == 0 || len(train) != len(test) {
		return template.HTML(`<p class="nodata">no walk-forward windows</p>`)
	}

	hi := 0.0
	lo := 0.0
	for i := range train {
		hi = math.Max(hi, math.Max(train[i], test[i]))
		lo = math.Min(lo, math.Min(train[i], test[i]))
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	groupWidth := float64(chartWidth-2*chartPad) / float64(len(train))
	barWidth := groupWidth/2 - 2
	zeroY := float64(chartHeight-chartPad) - (0-lo)/span*float64(chartHeight-2*chartPad)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %d %d" class="chart">`, chartWidth, chartHeight)
	fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="var(--border)" stroke-dasharray="4"/>`,
		chartPad, zeroY, chartWidth-chartPad, zeroY)
	for i := range train {
		x := chartPad + float64(i)*groupWidth
		b.WriteString(barRect(x, train[i], lo, span, barWidth, "var(--accent)"))
		b.WriteString(barRect(x+barWidth+2, test[i], lo, span, barWidth, "var(--accent2)"))
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

func barRect(x, v, lo, span, width float64, fill string) string {
	valueY := float64(chartHeight-chartPad) - (v-lo)/span*float64(chartHeight-2*chartPad)
	zeroY := float64(chartHeight-chartPad) - (0-lo)/span*float64(chartHeight-2*chartPad)
	y := math.Min(valueY, zeroY)
	h := math.Abs(zeroY - valueY)
	if h < 1 {
		h = 1
	}
	return fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`, x, y, width, h, fill)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
