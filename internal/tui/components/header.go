package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// Header renders the console header bar: app name, breadcrumb trail and
// session state.
type Header struct {
	Breadcrumb []string // "Systems", "Trend Following", "Breakout v1"
	User       string   // logged-in email, empty when logged out
	Width      int
}

// Render returns the styled header string.
func (h Header) Render() string {
	width := h.Width
	if width <= 0 {
		width = 80
	}

	logo := lipgloss.NewStyle().
		Foreground(styles.AccentPrimary).
		Bold(true).
		Render("EDGE LAB")

	sep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render("  │  ")

	crumbSep := lipgloss.NewStyle().Foreground(styles.TextMuted).Render(" › ")
	var crumbs []string
	for i, c := range h.Breadcrumb {
		if i == len(h.Breadcrumb)-1 {
			crumbs = append(crumbs, styles.Value.Render(c))
		} else {
			crumbs = append(crumbs, styles.Subtitle.Render(c))
		}
	}
	trail := strings.Join(crumbs, crumbSep)

	session := styles.Badge("OFFLINE", styles.TextMuted)
	if h.User != "" {
		session = styles.Label.Render(h.User)
	}

	content := logo + sep + trail
	gap := width - lipgloss.Width(content) - lipgloss.Width(session) - 2
	if gap > 0 {
		content += strings.Repeat(" ", gap)
	} else {
		content += sep
	}
	content += session

	return styles.Header.Width(width).Render(content)
}
