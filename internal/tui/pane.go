package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// pane draws a bordered box with an inline title. Border color signals the
// pane's interaction state: focused beats droppable beats the plain border.
type pane struct {
	Title     string
	Content   string
	Focused   bool
	Droppable bool
}

func (p pane) Render(width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}

	border := colorBorder
	prefix := "  "
	if p.Droppable {
		border = colorDrop
		prefix = "▼ "
	}
	if p.Focused {
		border = colorAccent
		prefix = "● "
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	if contentWidth < 1 {
		contentWidth = 1
		innerWidth = contentWidth + 2
	}

	titleText := " " + strings.TrimSpace(prefix+p.Title) + " "
	if ansi.StringWidth(titleText) > innerWidth-2 {
		titleText = " " + ansi.Truncate(strings.TrimSpace(prefix+p.Title), innerWidth-4, "…") + " "
	}
	dashes := innerWidth - ansi.StringWidth(titleText) - 1
	if dashes < 0 {
		dashes = 0
	}

	top := borderStyle.Render("╭─") +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", dashes)+"╮")

	v := borderStyle.Render("│")
	lines := strings.Split(p.Content, "\n")
	if p.Content == "" {
		lines = nil
	}

	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		line = ansi.Truncate(line, contentWidth, "…")
		pad := contentWidth - ansi.StringWidth(line)
		if pad < 0 {
			pad = 0
		}
		rows = append(rows, v+" "+line+strings.Repeat(" ", pad)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(rows, "\n")
}
