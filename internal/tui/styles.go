package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorDrop    lipgloss.Color = "#f9e2af"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)

	keyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)

	cardStyle       = lipgloss.NewStyle().Foreground(colorText)
	cardCursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	cardDragStyle   = lipgloss.NewStyle().Foreground(colorDrop).Bold(true)
	cardMetaStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	modalTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	modalWarnStyle  = lipgloss.NewStyle().Foreground(colorDrop)
	modalErrStyle   = lipgloss.NewStyle().Foreground(colorError)
)

// applyAccent recolors every accent-derived style, including the focused
// pane border. Styles are package-wide; this runs once at app construction.
func applyAccent(c string) {
	if c == "" {
		return
	}
	colorAccent = lipgloss.Color(c)
	headerStyle = headerStyle.Foreground(colorAccent)
	keyStyle = keyStyle.Foreground(colorAccent)
	cardCursorStyle = cardCursorStyle.Foreground(colorAccent)
	modalTitleStyle = modalTitleStyle.Foreground(colorAccent)
}
