package components

import (
	"fmt"
	"strings"

	"github.com/x88a9/edge-lab/internal/analytics"
	"github.com/x88a9/edge-lab/internal/model"
	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// MonteCarloPanel summarizes the simulated outcome envelope.
func MonteCarloPanel(mc *model.MonteCarloSummary) string {
	if mc == nil {
		return NoData("monte carlo not computed")
	}

	var lines []string
	lines = append(lines, styles.Title.Render("Monte Carlo"))
	lines = append(lines, kv("mean final return", styles.Signed(mc.MeanFinalReturn, "%.2f%%")))
	lines = append(lines, kv("median final return", styles.Signed(mc.MedianFinalReturn, "%.2f%%")))
	lines = append(lines, kv("p5 / p95 final", styles.Signed(mc.P5FinalReturn, "%.2f%%")+styles.Dim(" / ")+styles.Signed(mc.P95FinalReturn, "%.2f%%")))
	lines = append(lines, kv("mean max drawdown", styles.LossText.Render(fmt.Sprintf("%.2f%%", mc.MeanMaxDD))))
	lines = append(lines, kv("p95 drawdown", styles.LossText.Render(fmt.Sprintf("%.2f%%", mc.P95DD))))
	lines = append(lines, kv("worst case drawdown", styles.LossText.Render(fmt.Sprintf("%.2f%%", mc.WorstCaseDD))))
	return strings.Join(lines, "\n")
}

// RiskOfRuinPanel summarizes the ruin simulation. The probability gets
// the loudest treatment since it is the number people came for.
func RiskOfRuinPanel(ror *model.RiskOfRuinSummary) string {
	if ror == nil {
		return NoData("risk of ruin not computed")
	}

	prob := fmt.Sprintf("%.2f%%", ror.RuinProbability*100)
	probStyled := styles.ProfitText.Render(prob)
	if ror.RuinProbability >= 0.05 {
		probStyled = styles.LossText.Render(prob)
	} else if ror.RuinProbability >= 0.01 {
		probStyled = styles.Value.Foreground(styles.StatusWarn).Render(prob)
	}

	var lines []string
	lines = append(lines, styles.Title.Render("Risk of Ruin"))
	lines = append(lines, kv("ruin probability", probStyled))
	lines = append(lines, kv("mean final capital", styles.Value.Render(fmt.Sprintf("%.2f", ror.MeanFinalCapital))))
	lines = append(lines, kv("median final capital", styles.Value.Render(fmt.Sprintf("%.2f", ror.MedianFinalCapital))))
	lines = append(lines, kv("mean max drawdown", styles.LossText.Render(fmt.Sprintf("%.2f%%", ror.MeanMaxDrawdown*100))))
	lines = append(lines, kv("worst case drawdown", styles.LossText.Render(fmt.Sprintf("%.2f%%", ror.WorstCaseDrawdown*100))))
	return strings.Join(lines, "\n")
}

// KellyPanel renders the fraction sweep, marking the growth-optimal and
// safe fractions the server flagged.
func KellyPanel(kelly *model.KellySimulation) string {
	if kelly == nil || len(kelly.AllResults) == 0 {
		return NoData("kelly sweep not computed")
	}

	var lines []string
	lines = append(lines, styles.Title.Render("Kelly sweep"))
	lines = append(lines, "  "+styles.TableHeader.Render("fraction   final capital   ruin      max dd"))

	for _, p := range kelly.AllResults {
		marker := "  "
		switch {
		case pointEquals(kelly.GrowthOptimal, p):
			marker = styles.Amber("◆ ")
		case pointEquals(kelly.SafeFraction, p):
			marker = styles.Green("◆ ")
		}
		lines = append(lines, fmt.Sprintf("%s%-10.3f %-15.2f %-9s %s",
			marker,
			p.Fraction,
			p.MeanFinalCapital,
			fmt.Sprintf("%.2f%%", p.RuinProbability*100),
			fmt.Sprintf("%.2f%%", p.MeanMaxDrawdown*100),
		))
	}

	var legend []string
	if kelly.GrowthOptimal != nil {
		legend = append(legend, styles.Amber("◆")+styles.Dim(fmt.Sprintf(" growth-optimal %.3f", kelly.GrowthOptimal.Fraction)))
	}
	if kelly.SafeFraction != nil {
		legend = append(legend, styles.Green("◆")+styles.Dim(fmt.Sprintf(" safe %.3f", kelly.SafeFraction.Fraction)))
	}
	if len(legend) > 0 {
		lines = append(lines, "")
		lines = append(lines, strings.Join(legend, "   "))
	}

	return strings.Join(lines, "\n")
}

// WalkForwardPanel renders train vs test expectancy per window and the
// stability classification. Windows with non-finite statistics are
// dropped before rendering.
func WalkForwardPanel(windows []model.WalkForwardWindow) string {
	finite := analytics.FilterFinite(windows)
	if len(finite) == 0 {
		return NoData("no finite walk-forward windows")
	}

	stability := analytics.ClassifyStability(finite)
	var badge string
	switch stability {
	case analytics.StabilityStable:
		badge = styles.Badge("STABLE", styles.StatusOK)
	case analytics.StabilityDegrading:
		badge = styles.Badge("DEGRADING", styles.StatusError)
	default:
		badge = styles.Badge("IMPROVING", styles.StatusInfo)
	}

	var lines []string
	lines = append(lines, styles.Title.Render("Walk-forward")+"  "+badge)
	lines = append(lines, "  "+styles.TableHeader.Render("win   train exp   test exp    train shp   test shp"))

	for i, w := range finite {
		testStr := styles.Signed(w.TestExpectancy, "%.3f")
		if w.TestExpectancy < w.TrainExpectancy {
			testStr += styles.Red(" ↓")
		}
		lines = append(lines, fmt.Sprintf("  %-5d %-11s %-20s %-11.2f %.2f",
			i+1,
			fmt.Sprintf("%.3f", w.TrainExpectancy),
			testStr,
			w.TrainSharpe,
			w.TestSharpe,
		))
	}

	degrading := analytics.DegradingCount(finite)
	lines = append(lines, "")
	lines = append(lines, styles.Dim(fmt.Sprintf("%d/%d windows degrade out of sample", degrading, len(finite))))

	return strings.Join(lines, "\n")
}

func kv(label, value string) string {
	return fmt.Sprintf("  %s %s", styles.Label.Render(fmt.Sprintf("%-22s", label)), value)
}

func pointEquals(marked *model.KellyPoint, p model.KellyPoint) bool {
	return marked != nil && marked.Fraction == p.Fraction
}
