package models

import (
	"fmt"
	"strings"

	"github.com/x88a9/edge-lab/internal/model"
	"github.com/x88a9/edge-lab/internal/tui/components"
	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// SystemsModel is the systems browse screen.
type SystemsModel struct {
	systems []model.System
	cursor  int
	loading bool
}

// NewSystemsModel creates an empty systems screen.
func NewSystemsModel() SystemsModel {
	return SystemsModel{loading: true}
}

func (m SystemsModel) selected() (model.System, bool) {
	if m.cursor < 0 || m.cursor >= len(m.systems) {
		return model.System{}, false
	}
	return m.systems[m.cursor], true
}

// View renders the systems table.
func (m SystemsModel) View(width int) string {
	if m.loading {
		return styles.Dim("  loading systems...")
	}

	rows := make([][]string, len(m.systems))
	for i, s := range m.systems {
		rows[i] = []string{s.Label(), s.Asset, styles.TruncateWithEllipsis(s.Description, 40)}
	}

	table := components.DataTable{
		Columns: []string{"SYSTEM", "ASSET", "DESCRIPTION"},
		Widths:  []int{28, 10, 42},
		Rows:    rows,
		Cursor:  m.cursor,
		Empty:   "no systems yet, press n to create one",
	}

	return styles.Title.Render(fmt.Sprintf("  Systems (%d)", len(m.systems))) + "\n\n" + table.Render()
}

// VariantsModel is the variants browse screen for one system.
type VariantsModel struct {
	systemID    string
	systemLabel string
	variants    []model.Variant
	cursor      int
	loading     bool

	// summary is the cross-run aggregate for the selected variant,
	// loaded on demand with the s key.
	summary *model.VariantSummary
}

// NewVariantsModel creates an empty variants screen.
func NewVariantsModel() VariantsModel {
	return VariantsModel{loading: true}
}

func (m VariantsModel) selected() (model.Variant, bool) {
	if m.cursor < 0 || m.cursor >= len(m.variants) {
		return model.Variant{}, false
	}
	return m.variants[m.cursor], true
}

// View renders the variants table plus the optional summary panel.
func (m VariantsModel) View(width int) string {
	if m.loading {
		return styles.Dim("  loading variants...")
	}

	rows := make([][]string, len(m.variants))
	for i, v := range m.variants {
		rows[i] = []string{v.Label(), fmt.Sprintf("v%d", v.Version), v.ParameterHash, styles.TruncateWithEllipsis(v.Description, 30)}
	}

	table := components.DataTable{
		Columns: []string{"VARIANT", "VER", "PARAM HASH", "DESCRIPTION"},
		Widths:  []int{26, 5, 14, 32},
		Rows:    rows,
		Cursor:  m.cursor,
		Empty:   "no variants yet, press n to create one",
	}

	out := styles.Title.Render(fmt.Sprintf("  Variants (%d)", len(m.variants))) + "\n\n" + table.Render()
	if m.summary != nil {
		out += "\n\n" + renderSummary(*m.summary)
	}
	return out
}

// renderSummary shows the cross-run aggregate with its significance
// stats when the server supplied them.
func renderSummary(s model.VariantSummary) string {
	var lines []string
	lines = append(lines, styles.Title.Render("  Cross-run summary")+styles.Dim(fmt.Sprintf("  %d runs", s.TotalRuns)))

	mean := s.MeanExpectancy
	sharpe := s.MeanSharpe
	win := s.MeanWinRate
	dd := s.WorstMaxDD
	lines = append(lines, "  "+components.MetricRow(
		components.MetricCard{Label: "mean expectancy", Value: &mean, Format: "%.3f", Signed: true},
		components.MetricCard{Label: "mean sharpe", Value: &sharpe, Format: "%.2f"},
		components.MetricCard{Label: "mean win rate", Value: &win, Format: "%.1f%%"},
		components.MetricCard{Label: "worst max dd", Value: &dd, Format: "%.1f%%"},
	))

	if s.TStat != nil {
		sig := fmt.Sprintf("  t-stat %.2f", *s.TStat)
		if s.CILower != nil && s.CIUpper != nil {
			sig += fmt.Sprintf("   95%% CI [%.3f, %.3f]", *s.CILower, *s.CIUpper)
		}
		if s.ProbEdgePositive != nil {
			sig += fmt.Sprintf("   P(edge>0) %.1f%%", *s.ProbEdgePositive*100)
		}
		lines = append(lines, styles.Subtitle.Render(sig))
	}

	return strings.Join(lines, "\n")
}

// RunsModel is the runs browse screen for one variant.
type RunsModel struct {
	variantID    string
	variantLabel string
	systemLabel  string
	runs         []model.Run
	cursor       int
	loading      bool
}

// NewRunsModel creates an empty runs screen.
func NewRunsModel() RunsModel {
	return RunsModel{loading: true}
}

func (m RunsModel) selected() (model.Run, bool) {
	if m.cursor < 0 || m.cursor >= len(m.runs) {
		return model.Run{}, false
	}
	return m.runs[m.cursor], true
}

// View renders the runs table.
func (m RunsModel) View(width int) string {
	if m.loading {
		return styles.Dim("  loading runs...")
	}

	rows := make([][]string, len(m.runs))
	for i, r := range m.runs {
		rows[i] = []string{
			r.Label(),
			r.RunType,
			styles.RunStatusBadge(r.Status),
			fmt.Sprintf("%.0f", r.InitialCapital),
			r.CreatedAt,
		}
	}

	table := components.DataTable{
		Columns: []string{"RUN", "TYPE", "STATUS", "CAPITAL", "CREATED"},
		Widths:  []int{26, 10, 14, 10, 20},
		Rows:    rows,
		Cursor:  m.cursor,
		Empty:   "no runs yet, press n to create one",
	}

	return styles.Title.Render(fmt.Sprintf("  Runs (%d)", len(m.runs))) + "\n\n" + table.Render()
}
