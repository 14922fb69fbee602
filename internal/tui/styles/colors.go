package styles

import "github.com/charmbracelet/lipgloss"

// Ledger Dark palette
// Charcoal backgrounds with amber accents tuned for dense numeric tables.

var (
	// Backgrounds (darkest to lightest)
	BgDeep    = lipgloss.Color("#10100e") // Deepest, main background
	BgPanel   = lipgloss.Color("#181815") // Panel/card background
	BgSurface = lipgloss.Color("#22221d") // Elevated surface
	BgHover   = lipgloss.Color("#2e2e27") // Hover/selected row

	// Accents
	AccentPrimary   = lipgloss.Color("#e8a33d") // Amber, primary actions and focus
	AccentSecondary = lipgloss.Color("#5fb4a2") // Sea green, secondary info
	AccentTertiary  = lipgloss.Color("#8f8aff") // Periwinkle, analytics panels

	// Status
	StatusOK    = lipgloss.Color("#3fb950") // Green
	StatusWarn  = lipgloss.Color("#d29922") // Amber
	StatusError = lipgloss.Color("#f85149") // Red
	StatusInfo  = lipgloss.Color("#58a6ff") // Blue

	// P&L
	Profit = lipgloss.Color("#3fb950")
	Loss   = lipgloss.Color("#f85149")

	// Text
	TextPrimary   = lipgloss.Color("#e6e1d7") // High contrast
	TextSecondary = lipgloss.Color("#9e988a") // Dimmed
	TextMuted     = lipgloss.Color("#6b6659") // Very dim

	// Borders
	BorderNormal  = lipgloss.Color("#3a3a32") // Subtle
	BorderFocused = lipgloss.Color("#e8a33d") // Amber focus ring
)
