package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// Toast kinds.
const (
	ToastInfo  = "info"
	ToastOK    = "ok"
	ToastError = "error"
)

// Toast is a transient one-line notification.
type Toast struct {
	Message string
	Kind    string
}

// Render returns the styled toast, empty when there is no message.
func (t Toast) Render() string {
	if t.Message == "" {
		return ""
	}

	var color lipgloss.Color
	switch t.Kind {
	case ToastOK:
		color = styles.StatusOK
	case ToastError:
		color = styles.StatusError
	default:
		color = styles.StatusInfo
	}

	return lipgloss.NewStyle().
		Foreground(color).
		Background(styles.BgSurface).
		PaddingLeft(1).
		PaddingRight(1).
		Render(t.Message)
}
