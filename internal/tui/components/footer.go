package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// KeyHint describes a single keybinding hint for display in the footer.
type KeyHint struct {
	Key  string
	Desc string
}

// Footer renders context-aware keybinding hints.
type Footer struct {
	Hints []KeyHint
	Width int
}

// Render returns the styled footer string.
func (f Footer) Render() string {
	width := f.Width
	if width <= 0 {
		width = 80
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.AccentPrimary).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	sepStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)

	var parts []string
	for _, h := range f.Hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}

	return styles.Footer.Width(width).Render(strings.Join(parts, sepStyle.Render(" • ")))
}

// ListFooter is the preset for browse screens.
func ListFooter(width int) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "↑↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "n", Desc: "new"},
			{Key: "r", Desc: "refresh"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		},
		Width: width,
	}
}

// DetailFooter is the preset for the run detail screen.
func DetailFooter(width int) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "tab", Desc: "next panel"},
			{Key: "t", Desc: "add trade"},
			{Key: "f", Desc: "finish run"},
			{Key: "c", Desc: "compute"},
			{Key: "l", Desc: "log scale"},
			{Key: "esc", Desc: "back"},
		},
		Width: width,
	}
}

// FormFooter is the preset for modal forms.
func FormFooter(width int) Footer {
	return Footer{
		Hints: []KeyHint{
			{Key: "tab", Desc: "next field"},
			{Key: "shift+tab", Desc: "prev field"},
			{Key: "enter", Desc: "submit"},
			{Key: "esc", Desc: "cancel"},
		},
		Width: width,
	}
}
