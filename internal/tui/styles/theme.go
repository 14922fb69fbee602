package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is the default panel style with rounded borders and 1-cell padding.
var Panel = lipgloss.NewStyle().
	Background(BgPanel).
	Border(RoundedBorder).
	BorderForeground(BorderNormal).
	Padding(1)

// PanelFocused is Panel with the amber focus border.
var PanelFocused = lipgloss.NewStyle().
	Background(BgPanel).
	Border(RoundedBorder).
	BorderForeground(BorderFocused).
	Padding(1)

// Card is a compact elevated surface with horizontal padding only.
var Card = lipgloss.NewStyle().
	Background(BgSurface).
	Border(ThinBorder).
	BorderForeground(BorderNormal).
	PaddingLeft(1).
	PaddingRight(1)

// Header spans the full width with bold amber text on the deepest background.
var Header = lipgloss.NewStyle().
	Background(BgDeep).
	Foreground(AccentPrimary).
	Bold(true).
	PaddingLeft(1).
	PaddingRight(1)

// Footer spans the full width with muted text on the deepest background.
var Footer = lipgloss.NewStyle().
	Background(BgDeep).
	Foreground(TextMuted).
	PaddingLeft(1).
	PaddingRight(1)

// Title is bold AccentPrimary text for section headings.
var Title = lipgloss.NewStyle().
	Foreground(AccentPrimary).
	Bold(true)

// Subtitle is regular TextSecondary text for secondary headings.
var Subtitle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// Label is TextMuted text for field labels.
var Label = lipgloss.NewStyle().
	Foreground(TextMuted)

// Value is bold TextPrimary text for data values.
var Value = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// ProfitText is bold green for positive expectancy and returns.
var ProfitText = lipgloss.NewStyle().
	Foreground(Profit).
	Bold(true)

// LossText is bold red for negative expectancy and drawdowns.
var LossText = lipgloss.NewStyle().
	Foreground(Loss).
	Bold(true)

// ErrorText renders inline error messages.
var ErrorText = lipgloss.NewStyle().
	Foreground(StatusError)

// Badge returns an inline colored badge such as "● OPEN".
func Badge(text string, color lipgloss.Color) string {
	dot := lipgloss.NewStyle().Foreground(color).Render("●")
	label := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(text)
	return dot + " " + label
}

// RunStatusBadge maps a run status to its badge. Open runs are live
// amber, finished runs settle to green; unknown statuses render muted
// rather than hiding the raw value.
func RunStatusBadge(status string) string {
	switch strings.ToLower(status) {
	case "open":
		return Badge("OPEN", AccentPrimary)
	case "finished":
		return Badge("FINISHED", StatusOK)
	default:
		return Badge(strings.ToUpper(status), TextMuted)
	}
}

// DirtyBadge flags a stale analytics snapshot.
func DirtyBadge() string {
	return Badge("STALE", StatusWarn)
}

// TableHeader is bold, underlined TextSecondary for column headings.
var TableHeader = lipgloss.NewStyle().
	Foreground(TextSecondary).
	Bold(true).
	Underline(true)

// TableRow returns a row style; pass even for zebra striping, selected
// for the cursor row.
func TableRow(even, selected bool) lipgloss.Style {
	if selected {
		return lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgHover).
			Bold(true)
	}
	bg := BgPanel
	if !even {
		bg = BgSurface
	}
	return lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(bg)
}

// Divider returns a horizontal rule of the given width.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	line := strings.Repeat("─", width)
	return lipgloss.NewStyle().Foreground(BorderNormal).Render(line)
}
