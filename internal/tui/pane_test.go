package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPaneRenderGeometry(t *testing.T) {
	out := pane{Title: "Active Projects", Content: "one\ntwo"}.Render(40, 8)
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("rendered %d lines, want 8", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
	if !strings.Contains(out, "Active Projects") {
		t.Error("title missing from render")
	}
}

func TestPaneTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", 100)
	out := pane{Title: "T", Content: long}.Render(20, 5)
	for i, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w != 20 {
			t.Errorf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestPaneMarksDroppableAndFocused(t *testing.T) {
	droppable := pane{Title: "Lane", Droppable: true}.Render(30, 4)
	if !strings.Contains(droppable, "▼") {
		t.Error("droppable pane missing drop marker")
	}

	focused := pane{Title: "Lane", Focused: true, Droppable: true}.Render(30, 4)
	if !strings.Contains(focused, "●") {
		t.Error("focused pane missing focus marker")
	}
}
