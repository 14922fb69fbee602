package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// MetricCard displays one labeled scalar. Signed values color by sign;
// a nil source renders the em-dash placeholder instead of a fake zero.
type MetricCard struct {
	Label  string
	Value  *float64
	Format string // "%.2f", "%.1f%%"
	Signed bool
}

// Render returns the styled card.
func (m MetricCard) Render() string {
	format := m.Format
	if format == "" {
		format = "%.2f"
	}

	var value string
	switch {
	case m.Value == nil:
		value = styles.Dim("—")
	case m.Signed:
		value = styles.Signed(*m.Value, format)
	default:
		value = styles.Value.Render(fmt.Sprintf(format, *m.Value))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		value,
		styles.Label.Render(m.Label),
	)
	return styles.Card.Render(body)
}

// MetricRow lays out cards horizontally.
func MetricRow(cards ...MetricCard) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = c.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// IntCard is MetricCard for counts.
func IntCard(label string, value *int) MetricCard {
	if value == nil {
		return MetricCard{Label: label}
	}
	v := float64(*value)
	return MetricCard{Label: label, Value: &v, Format: "%.0f"}
}
