// Package report renders a self-contained HTML research report for a
// run: headline metrics, inline SVG charts and the analytics panels.
package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/x88a9/edge-lab/internal/analytics"
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
)

// Card is one headline metric cell.
type Card struct {
	Label string
	Value string
	Class string // "pos", "neg" or empty
}

// page is the template's data root.
type page struct {
	Title       string
	System      string
	Variant     string
	Run         model.Run
	Stale       bool
	GeneratedAt string

	Cards []Card

	EquityChart    template.HTML
	DrawdownChart  template.HTML
	MaxDrawdown    string
	HistogramChart template.HTML
	Distribution   *analytics.Quartiles
	Skewness       float64

	MonteCarlo *model.MonteCarloSummary
	RiskOfRuin *model.RiskOfRuinSummary
	Kelly      *model.KellySimulation

	WalkForwardChart template.HTML
	Stability        string
	DegradingNote    string

	Regimes []analytics.RegimeStats
}

// IsGrowthOptimal reports whether fraction carries the growth-optimal flag.
func (p page) IsGrowthOptimal(fraction float64) bool {
	return p.Kelly != nil && p.Kelly.GrowthOptimal != nil && p.Kelly.GrowthOptimal.Fraction == fraction
}

// IsSafe reports whether fraction carries the safe-fraction flag.
func (p page) IsSafe(fraction float64) bool {
	return p.Kelly != nil && p.Kelly.SafeFraction != nil && p.Kelly.SafeFraction.Fraction == fraction
}

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"mulf": func(a, b float64) float64 { return a * b },
}).Parse(reportHTML))

// Write renders the report for a loaded run view and its analytics
// bundle. Panels whose data is missing are omitted rather than rendered
// empty.
func Write(w io.Writer, view loader.RunView, bundle loader.AnalyticsBundle, snapshot *model.AnalyticsSnapshot) error {
	p := page{
		Title:       view.Run.Label(),
		System:      orDash(view.SystemLabel),
		Variant:     orDash(view.VariantLabel),
		Run:         view.Run,
		Stale:       snapshot != nil && snapshot.IsDirty,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	p.Cards = buildCards(view.Metrics)

	equity := analytics.EquityValues(view.Equity)
	drawdown := analytics.FillDrawdowns(view.Equity)
	p.EquityChart = LineSVG(equity, "var(--accent2)")
	p.DrawdownChart = LineSVG(drawdown, "var(--loss)")
	if i := analytics.MaxDrawdownIndex(drawdown); i >= 0 {
		p.MaxDrawdown = fmt.Sprintf("%.1f%%", drawdown[i]*100)
	}

	sample := analytics.RMultiples(view.Trades)
	p.HistogramChart = HistogramSVG(analytics.Histogram(sample))
	if len(sample) > 0 {
		q := analytics.SampleQuartiles(sample)
		p.Distribution = &q
		p.Skewness = analytics.Skewness(sample)
	}

	p.MonteCarlo = bundle.MonteCarlo
	p.RiskOfRuin = bundle.RiskOfRuin
	p.Kelly = bundle.Kelly

	if finite := analytics.FilterFinite(bundle.WalkForward); len(finite) > 0 {
		train := make([]float64, len(finite))
		test := make([]float64, len(finite))
		for i, w := range finite {
			train[i] = w.TrainExpectancy
			test[i] = w.TestExpectancy
		}
		p.WalkForwardChart = WalkForwardSVG(train, test)
		p.Stability = analytics.ClassifyStability(finite)
		p.DegradingNote = fmt.Sprintf("%d/%d windows degrade out of sample",
			analytics.DegradingCount(finite), len(finite))
	}

	if bundle.Regime != nil {
		stats, err := analytics.AggregateRegimes(view.Trades, bundle.Regime.Labels)
		if err == nil {
			p.Regimes = stats
		}
	}

	return tmpl.Execute(w, p)
}

func buildCards(m model.MetricsSnapshot) []Card {
	var cards []Card
	add := func(label string, v *float64, format string, signed bool) {
		if v == nil {
			return
		}
		class := ""
		if signed {
			if *v > 0 {
				class = "pos"
			} else if *v < 0 {
				class = "neg"
			}
		}
		cards = append(cards, Card{Label: label, Value: fmt.Sprintf(format, *v), Class: class})
	}

	if m.TotalTrades != nil {
		cards = append(cards, Card{Label: "trades", Value: fmt.Sprintf("%d", *m.TotalTrades)})
	}
	add("expectancy R", m.ExpectancyR, "%.3f", true)
	add("total R", m.TotalR, "%.2f", true)
	add("avg win R", m.AvgWinR, "%.3f", false)
	add("avg loss R", m.AvgLossR, "%.3f", false)
	add("kelly f", m.KellyF, "%.3f", false)
	add("max dd R", m.MaxDrawdownR, "%.2f", false)
	add("log growth", m.LogGrowth, "%.4f", true)
	return cards
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
