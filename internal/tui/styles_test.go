package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/laneboard/internal/board"
	"github.com/jask/laneboard/internal/config"
)

func TestConfiguredAccentRecolorsStyles(t *testing.T) {
	defer applyAccent("#89b4fa")

	cfg := config.Config{UI: config.UIConfig{
		ActiveTitle:   "Active Projects",
		FinishedTitle: "Finished Projects",
		AccentColor:   "#ff0000",
	}}
	New(cfg, board.NewStore(), zap.NewNop())

	want := lipgloss.Color("#ff0000")
	if colorAccent != want {
		t.Fatalf("colorAccent = %q, want %q", colorAccent, want)
	}
	// the focused pane border and the accent-derived styles all follow
	if got := headerStyle.GetForeground(); got != want {
		t.Errorf("header foreground = %v, want %v", got, want)
	}
	if got := cardCursorStyle.GetForeground(); got != want {
		t.Errorf("card cursor foreground = %v, want %v", got, want)
	}
	if got := modalTitleStyle.GetForeground(); got != want {
		t.Errorf("modal title foreground = %v, want %v", got, want)
	}
}

func TestEmptyAccentKeepsDefaults(t *testing.T) {
	before := colorAccent
	applyAccent("")
	if colorAccent != before {
		t.Fatalf("colorAccent changed on empty accent: %q", colorAccent)
	}
}
